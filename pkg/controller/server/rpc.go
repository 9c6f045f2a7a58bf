package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/monoconf/pkg/domain/model"
	"github.com/m-mizutani/monoconf/pkg/domain/types"
	"github.com/m-mizutani/monoconf/pkg/utils/errutil"
	"github.com/m-mizutani/monoconf/pkg/utils/logging"
	"google.golang.org/grpc/codes"
)

const (
	contentTypeJSON     = "application/json"
	contentTypeProtobuf = "application/protobuf"
)

type encoding int

const (
	encodingJSON encoding = iota
	encodingProtobuf
)

func requestEncoding(r *http.Request) encoding {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return encodingJSON
	}
	switch mediaType {
	case "application/protobuf", "application/x-protobuf":
		return encodingProtobuf
	default:
		return encodingJSON
	}
}

func handleRPC[Req, Resp model.WireMessage](cfg *config, rpc types.RPC, newReq func() Req, call func(ctx context.Context, req Req) (Resp, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		enc := requestEncoding(r)

		req := newReq()
		if err := decodeRequest(w, r, cfg.maxBodySize, enc, req); err != nil {
			writeError(ctx, w, rpc, err)
			return
		}

		resp, err := call(ctx, req)
		if err != nil {
			writeError(ctx, w, rpc, err)
			return
		}

		body, contentType, err := encodeResponse(enc, resp)
		if err != nil {
			writeError(ctx, w, rpc, err)
			return
		}

		w.Header().Set("Content-Type", contentType)
		safeWrite(w, http.StatusOK, body)
	}
}

var errBodyTooLarge = goerr.New("request body too large")

func decodeRequest(w http.ResponseWriter, r *http.Request, maxBodySize int64, enc encoding, req model.WireMessage) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return goerr.Wrap(errBodyTooLarge, "failed to read request body", goerr.V("limit", maxErr.Limit))
		}
		return goerr.Wrap(types.ErrMalformedRequest, "failed to read request body", goerr.V("reason", err.Error()))
	}

	switch enc {
	case encodingProtobuf:
		if err := req.UnmarshalProto(body); err != nil {
			return goerr.Wrap(err, "failed to decode protobuf request")
		}

	default:
		// An empty body is the message with every field unset
		if len(body) == 0 {
			return nil
		}
		// string fields of the binary encoding reject invalid UTF-8 as well
		if !utf8.Valid(body) {
			return goerr.Wrap(types.ErrMalformedRequest, "JSON request is not valid UTF-8")
		}
		if err := json.Unmarshal(body, req); err != nil {
			return goerr.Wrap(types.ErrMalformedRequest, "failed to decode JSON request", goerr.V("reason", err.Error()))
		}
	}

	return nil
}

func encodeResponse(enc encoding, resp model.WireMessage) ([]byte, string, error) {
	if enc == encodingProtobuf {
		return resp.MarshalProto(), contentTypeProtobuf, nil
	}

	body, err := json.Marshal(resp)
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to encode JSON response")
	}
	return body, contentTypeJSON, nil
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	RPC     string `json:"rpc"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func errorStatus(err error) (int, codes.Code) {
	switch {
	case errors.Is(err, types.ErrMalformedRequest):
		return http.StatusBadRequest, codes.InvalidArgument
	case errors.Is(err, errBodyTooLarge):
		return http.StatusRequestEntityTooLarge, codes.ResourceExhausted
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound, codes.NotFound
	case errors.Is(err, types.ErrUnavailable):
		return http.StatusServiceUnavailable, codes.Unavailable
	default:
		return http.StatusInternalServerError, codes.Internal
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, rpc types.RPC, err error) {
	status, code := errorStatus(err)
	if status >= http.StatusInternalServerError {
		errutil.HandleError(ctx, "rpc failed", err)
	} else {
		logging.From(ctx).Warn("rpc rejected",
			logging.RPCAttr(rpc),
			slog.String("code", code.String()),
			logging.ErrorAttr(err),
		)
	}

	body, marshalErr := json.Marshal(errorResponse{
		Error: errorBody{
			RPC:     rpc.String(),
			Code:    code.String(),
			Message: err.Error(),
		},
	})
	if marshalErr != nil {
		logging.From(ctx).Error("fail to encode error response", logging.ErrorAttr(marshalErr))
		body = []byte(`{"error":{}}`)
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	safeWrite(w, status, body)
}
