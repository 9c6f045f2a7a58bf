package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	// IndexName selects which backing project source GetProjects reads from.
	// In config documents an index is a workspace name.
	IndexName     string
	WorkspaceName string
	RequestID     string
)

func (x IndexName) String() string { return string(x) }

func (x WorkspaceName) String() string { return string(x) }

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

// RPC identifies one of the remote calls of the config service
type RPC string

const (
	RPCGetProjects   RPC = "GetProjects"
	RPCGetWorkspaces RPC = "GetWorkspaces"
	RPCGetAbout      RPC = "GetAbout"
)

func (x RPC) String() string { return string(x) }

// AppVersion is replaced at build time with -ldflags "-X ..."
var AppVersion = "dev"

// SentryDSN embeds a project key, so it is never logged as-is
type SentryDSN string

func (x SentryDSN) LogValue() slog.Value {
	if x == "" {
		return slog.StringValue("")
	}
	return slog.StringValue("***********")
}

func (x SentryDSN) String() string {
	return "***********"
}
