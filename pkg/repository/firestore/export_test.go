package firestore

var BatchRangesForTest = batchRanges
