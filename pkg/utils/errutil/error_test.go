package errutil_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/monoconf/pkg/domain/types"
	"github.com/m-mizutani/monoconf/pkg/utils/errutil"
	"github.com/m-mizutani/monoconf/pkg/utils/logging"
)

func TestHandleError(t *testing.T) {
	var buf bytes.Buffer
	gt.NoError(t, logging.ConfigureWriter("json", "info", &buf))
	t.Cleanup(func() {
		gt.NoError(t, logging.Configure("text", "info", "stdout"))
	})

	t.Run("error is logged with the request ID of the context", func(t *testing.T) {
		buf.Reset()
		ctx := logging.WithRequest(context.Background(), "req-1")
		err := goerr.Wrap(types.ErrUnavailable, "source is down", goerr.V(logging.KeyRPC, types.RPCGetAbout))

		errutil.HandleError(ctx, "rpc failed", err)

		var line map[string]any
		gt.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		gt.V(t, line["msg"]).Equal("rpc failed")
		gt.V(t, line["level"]).Equal("ERROR")
		gt.V(t, line["request_id"]).Equal("req-1")
		gt.S(t, buf.String()).Contains("source is down")
	})

	t.Run("plain error without request", func(t *testing.T) {
		buf.Reset()
		errutil.HandleError(context.Background(), "rpc failed", errors.New("connection reset"))

		gt.S(t, buf.String()).Contains("connection reset")
		gt.S(t, buf.String()).NotContains("request_id")
	})

	t.Run("nil error is ignored", func(t *testing.T) {
		buf.Reset()
		errutil.HandleError(context.Background(), "rpc failed", nil)
		gt.V(t, buf.Len()).Equal(0)
	})
}
