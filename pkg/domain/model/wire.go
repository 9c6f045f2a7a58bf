package model

import (
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/monoconf/pkg/domain/types"
	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the wire schema. They are part of the binary contract and
// must never be reassigned.
const (
	fieldProjectName            protowire.Number = 1
	fieldProjectRepositoryRegex protowire.Number = 2
	fieldProjectBranchRegex     protowire.Number = 3
	fieldProjectFileRegex       protowire.Number = 4

	fieldGetProjectsRequestIndex     protowire.Number = 1
	fieldGetProjectsResponseProjects protowire.Number = 1

	fieldWorkspaceName                   protowire.Number = 1
	fieldGetWorkspacesResponseWorkspaces protowire.Number = 1

	fieldAboutVersion protowire.Number = 1
	fieldAboutLinks   protowire.Number = 2

	fieldAboutLinkName     protowire.Number = 1
	fieldAboutLinkURL      protowire.Number = 2
	fieldAboutLinkCategory protowire.Number = 3

	fieldGetAboutResponseAbout protowire.Number = 1
)

// WireMessage is implemented by every message of the config contract
type WireMessage interface {
	MarshalProto() []byte
	UnmarshalProto(b []byte) error
}

var (
	_ WireMessage = (*ProjectDefinition)(nil)
	_ WireMessage = (*GetProjectsRequest)(nil)
	_ WireMessage = (*GetProjectsResponse)(nil)
	_ WireMessage = (*Workspace)(nil)
	_ WireMessage = (*GetWorkspacesRequest)(nil)
	_ WireMessage = (*GetWorkspacesResponse)(nil)
	_ WireMessage = (*About)(nil)
	_ WireMessage = (*AboutLink)(nil)
	_ WireMessage = (*GetAboutRequest)(nil)
	_ WireMessage = (*GetAboutResponse)(nil)
)

// proto3 does not emit a scalar holding its default value
func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendMessage(b []byte, num protowire.Number, msg WireMessage) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg.MarshalProto())
}

// walkFields calls fn with the payload of every length-delimited field. Fields
// of any other wire type are unknown to this schema and skipped.
func walkFields(b []byte, fn func(num protowire.Number, v []byte) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return goerr.Wrap(types.ErrMalformedRequest, "invalid field tag",
				goerr.V("reason", protowire.ParseError(n).Error()))
		}
		b = b[n:]

		if typ != protowire.BytesType {
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return goerr.Wrap(types.ErrMalformedRequest, "invalid field value",
					goerr.V("field", int32(num)),
					goerr.V("reason", protowire.ParseError(m).Error()))
			}
			b = b[m:]
			continue
		}

		v, m := protowire.ConsumeBytes(b)
		if m < 0 {
			return goerr.Wrap(types.ErrMalformedRequest, "invalid length-delimited field",
				goerr.V("field", int32(num)),
				goerr.V("reason", protowire.ParseError(m).Error()))
		}
		b = b[m:]

		if err := fn(num, v); err != nil {
			return err
		}
	}
	return nil
}

func decodeString(num protowire.Number, v []byte) (string, error) {
	if !utf8.Valid(v) {
		return "", goerr.Wrap(types.ErrMalformedRequest, "string field contains invalid UTF-8",
			goerr.V("field", int32(num)))
	}
	return string(v), nil
}

// ProjectDefinition

func (x *ProjectDefinition) MarshalProto() []byte {
	var b []byte
	b = appendString(b, fieldProjectName, x.Name)
	b = appendString(b, fieldProjectRepositoryRegex, x.RepositoryRegex)
	b = appendString(b, fieldProjectBranchRegex, x.BranchRegex)
	b = appendString(b, fieldProjectFileRegex, x.FileRegex)
	return b
}

func (x *ProjectDefinition) UnmarshalProto(b []byte) error {
	*x = ProjectDefinition{}
	return x.merge(b)
}

func (x *ProjectDefinition) merge(b []byte) error {
	return walkFields(b, func(num protowire.Number, v []byte) error {
		var dst *string
		switch num {
		case fieldProjectName:
			dst = &x.Name
		case fieldProjectRepositoryRegex:
			dst = &x.RepositoryRegex
		case fieldProjectBranchRegex:
			dst = &x.BranchRegex
		case fieldProjectFileRegex:
			dst = &x.FileRegex
		default:
			return nil
		}

		s, err := decodeString(num, v)
		if err != nil {
			return goerr.Wrap(err, "failed to decode ProjectDefinition")
		}
		*dst = s
		return nil
	})
}

// GetProjectsRequest

func (x *GetProjectsRequest) MarshalProto() []byte {
	return appendString(nil, fieldGetProjectsRequestIndex, x.Index)
}

func (x *GetProjectsRequest) UnmarshalProto(b []byte) error {
	*x = GetProjectsRequest{}
	return walkFields(b, func(num protowire.Number, v []byte) error {
		if num != fieldGetProjectsRequestIndex {
			return nil
		}
		s, err := decodeString(num, v)
		if err != nil {
			return goerr.Wrap(err, "failed to decode GetProjectsRequest")
		}
		x.Index = s
		return nil
	})
}

// GetProjectsResponse

func (x *GetProjectsResponse) MarshalProto() []byte {
	var b []byte
	for _, p := range x.Projects {
		if p == nil {
			p = &ProjectDefinition{}
		}
		b = appendMessage(b, fieldGetProjectsResponseProjects, p)
	}
	return b
}

func (x *GetProjectsResponse) UnmarshalProto(b []byte) error {
	*x = GetProjectsResponse{}
	return walkFields(b, func(num protowire.Number, v []byte) error {
		if num != fieldGetProjectsResponseProjects {
			return nil
		}
		var p ProjectDefinition
		if err := p.merge(v); err != nil {
			return err
		}
		x.Projects = append(x.Projects, &p)
		return nil
	})
}

// Workspace

func (x *Workspace) MarshalProto() []byte {
	return appendString(nil, fieldWorkspaceName, x.Name)
}

func (x *Workspace) UnmarshalProto(b []byte) error {
	*x = Workspace{}
	return x.merge(b)
}

func (x *Workspace) merge(b []byte) error {
	return walkFields(b, func(num protowire.Number, v []byte) error {
		if num != fieldWorkspaceName {
			return nil
		}
		s, err := decodeString(num, v)
		if err != nil {
			return goerr.Wrap(err, "failed to decode Workspace")
		}
		x.Name = s
		return nil
	})
}

// GetWorkspacesRequest

func (x *GetWorkspacesRequest) MarshalProto() []byte {
	return nil
}

func (x *GetWorkspacesRequest) UnmarshalProto(b []byte) error {
	// Validate the framing even though every field is ignored
	return walkFields(b, func(protowire.Number, []byte) error { return nil })
}

// GetWorkspacesResponse

func (x *GetWorkspacesResponse) MarshalProto() []byte {
	var b []byte
	for _, ws := range x.Workspaces {
		if ws == nil {
			ws = &Workspace{}
		}
		b = appendMessage(b, fieldGetWorkspacesResponseWorkspaces, ws)
	}
	return b
}

func (x *GetWorkspacesResponse) UnmarshalProto(b []byte) error {
	*x = GetWorkspacesResponse{}
	return walkFields(b, func(num protowire.Number, v []byte) error {
		if num != fieldGetWorkspacesResponseWorkspaces {
			return nil
		}
		var ws Workspace
		if err := ws.merge(v); err != nil {
			return err
		}
		x.Workspaces = append(x.Workspaces, &ws)
		return nil
	})
}

// About

func (x *About) MarshalProto() []byte {
	var b []byte
	b = appendString(b, fieldAboutVersion, x.Version)
	for _, link := range x.Links {
		if link == nil {
			link = &AboutLink{}
		}
		b = appendMessage(b, fieldAboutLinks, link)
	}
	return b
}

func (x *About) UnmarshalProto(b []byte) error {
	*x = About{}
	return x.merge(b)
}

func (x *About) merge(b []byte) error {
	return walkFields(b, func(num protowire.Number, v []byte) error {
		switch num {
		case fieldAboutVersion:
			s, err := decodeString(num, v)
			if err != nil {
				return goerr.Wrap(err, "failed to decode About")
			}
			x.Version = s

		case fieldAboutLinks:
			var link AboutLink
			if err := link.merge(v); err != nil {
				return err
			}
			x.Links = append(x.Links, &link)
		}
		return nil
	})
}

// AboutLink

func (x *AboutLink) MarshalProto() []byte {
	var b []byte
	b = appendString(b, fieldAboutLinkName, x.Name)
	b = appendString(b, fieldAboutLinkURL, x.URL)
	b = appendString(b, fieldAboutLinkCategory, x.Category)
	return b
}

func (x *AboutLink) UnmarshalProto(b []byte) error {
	*x = AboutLink{}
	return x.merge(b)
}

func (x *AboutLink) merge(b []byte) error {
	return walkFields(b, func(num protowire.Number, v []byte) error {
		var dst *string
		switch num {
		case fieldAboutLinkName:
			dst = &x.Name
		case fieldAboutLinkURL:
			dst = &x.URL
		case fieldAboutLinkCategory:
			dst = &x.Category
		default:
			return nil
		}

		s, err := decodeString(num, v)
		if err != nil {
			return goerr.Wrap(err, "failed to decode AboutLink")
		}
		*dst = s
		return nil
	})
}

// GetAboutRequest

func (x *GetAboutRequest) MarshalProto() []byte {
	return nil
}

func (x *GetAboutRequest) UnmarshalProto(b []byte) error {
	return walkFields(b, func(protowire.Number, []byte) error { return nil })
}

// GetAboutResponse

func (x *GetAboutResponse) MarshalProto() []byte {
	if x.About == nil {
		return nil
	}
	return appendMessage(nil, fieldGetAboutResponseAbout, x.About)
}

func (x *GetAboutResponse) UnmarshalProto(b []byte) error {
	*x = GetAboutResponse{}
	return walkFields(b, func(num protowire.Number, v []byte) error {
		if num != fieldGetAboutResponseAbout {
			return nil
		}
		// A singular message field seen twice is merged, as proto3 requires
		if x.About == nil {
			x.About = &About{}
		}
		return x.About.merge(v)
	})
}
