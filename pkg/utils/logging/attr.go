package logging

import (
	"log/slog"

	"github.com/m-mizutani/monoconf/pkg/domain/types"
)

// Attribute keys shared by access logs, RPC logs and error reports
const (
	KeyRequestID = "request_id"
	KeyRPC       = "rpc"
	KeyError     = "error"
)

func RequestIDAttr(id types.RequestID) slog.Attr {
	return slog.String(KeyRequestID, string(id))
}

func RPCAttr(rpc types.RPC) slog.Attr {
	return slog.String(KeyRPC, rpc.String())
}

func ErrorAttr(err error) slog.Attr {
	return slog.Any(KeyError, err)
}
