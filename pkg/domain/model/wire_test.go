package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/monoconf/pkg/domain/model"
	"github.com/m-mizutani/monoconf/pkg/domain/types"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
)

func TestProjectDefinitionGolden(t *testing.T) {
	p := &model.ProjectDefinition{
		Name:            "core",
		RepositoryRegex: ".*",
		BranchRegex:     "main",
		FileRegex:       `.*\.py`,
	}

	expected := []byte{
		0x0a, 0x04, 'c', 'o', 'r', 'e',
		0x12, 0x02, '.', '*',
		0x1a, 0x04, 'm', 'a', 'i', 'n',
		0x22, 0x06, '.', '*', '\\', '.', 'p', 'y',
	}
	gt.V(t, p.MarshalProto()).Equal(expected)
}

func TestAboutGolden(t *testing.T) {
	about := &model.About{
		Version: "1.2.0",
		Links: []*model.AboutLink{
			{Name: "docs", URL: "https://example/docs", Category: "reference"},
		},
	}

	var link []byte
	link = append(link, 0x0a, 0x04)
	link = append(link, "docs"...)
	link = append(link, 0x12, 0x14)
	link = append(link, "https://example/docs"...)
	link = append(link, 0x1a, 0x09)
	link = append(link, "reference"...)

	var expected []byte
	expected = append(expected, 0x0a, 0x05)
	expected = append(expected, "1.2.0"...)
	expected = append(expected, 0x12, byte(len(link)))
	expected = append(expected, link...)

	gt.V(t, len(link)).Equal(39)
	gt.V(t, about.MarshalProto()).Equal(expected)

	resp := &model.GetAboutResponse{About: about}
	gt.V(t, resp.MarshalProto()).Equal(append([]byte{0x0a, byte(len(expected))}, expected...))
}

func TestRequestGolden(t *testing.T) {
	t.Run("index is field 1", func(t *testing.T) {
		req := &model.GetProjectsRequest{Index: "default"}
		gt.V(t, req.MarshalProto()).Equal(append([]byte{0x0a, 0x07}, "default"...))
	})

	t.Run("parameter-less requests encode to empty payload", func(t *testing.T) {
		gt.V(t, len((&model.GetWorkspacesRequest{}).MarshalProto())).Equal(0)
		gt.V(t, len((&model.GetAboutRequest{}).MarshalProto())).Equal(0)
	})

	t.Run("legacy void field is accepted and ignored", func(t *testing.T) {
		b := protowire.AppendTag(nil, 1, protowire.BytesType)
		b = protowire.AppendString(b, "ignored")

		gt.NoError(t, (&model.GetWorkspacesRequest{}).UnmarshalProto(b))
		gt.NoError(t, (&model.GetAboutRequest{}).UnmarshalProto(b))
	})
}

func TestRoundTrip(t *testing.T) {
	strs := []string{"", "core", "日本語のプロジェクト", "🚀/ブランチ", `^(foo|bar)\.go$`}

	t.Run("ProjectDefinition", func(t *testing.T) {
		for _, s := range strs {
			src := &model.ProjectDefinition{
				Name:            s,
				RepositoryRegex: s + "repo",
				BranchRegex:     s,
				FileRegex:       "file" + s,
			}
			var dst model.ProjectDefinition
			gt.NoError(t, dst.UnmarshalProto(src.MarshalProto()))
			gt.V(t, &dst).Equal(src)
		}
	})

	t.Run("Workspace", func(t *testing.T) {
		for _, s := range strs {
			src := &model.Workspace{Name: s}
			var dst model.Workspace
			gt.NoError(t, dst.UnmarshalProto(src.MarshalProto()))
			gt.V(t, dst.Name).Equal(s)
		}
	})

	t.Run("About", func(t *testing.T) {
		src := &model.About{
			Version: "2.0.0-ß",
			Links: []*model.AboutLink{
				{Name: "docs", URL: "https://example/docs", Category: "reference"},
				{},
				{Name: "ソース", URL: "https://example/src"},
			},
		}
		var dst model.About
		gt.NoError(t, dst.UnmarshalProto(src.MarshalProto()))
		gt.V(t, &dst).Equal(src)
	})

	t.Run("responses keep order", func(t *testing.T) {
		src := &model.GetProjectsResponse{
			Projects: []*model.ProjectDefinition{
				{Name: "b", RepositoryRegex: "x"},
				{},
				{Name: "a", FileRegex: ".*"},
			},
		}
		var dst model.GetProjectsResponse
		gt.NoError(t, dst.UnmarshalProto(src.MarshalProto()))
		gt.V(t, &dst).Equal(src)

		ws := &model.GetWorkspacesResponse{
			Workspaces: []*model.Workspace{{Name: "team-a"}, {Name: "team-b"}},
		}
		var wsDst model.GetWorkspacesResponse
		gt.NoError(t, wsDst.UnmarshalProto(ws.MarshalProto()))
		gt.V(t, &wsDst).Equal(ws)
	})
}

func TestUnsetScalarDefault(t *testing.T) {
	p := &model.ProjectDefinition{Name: "stale", FileRegex: "stale"}
	gt.NoError(t, p.UnmarshalProto(nil))
	gt.V(t, p.Name).Equal("")
	gt.V(t, p.RepositoryRegex).Equal("")
	gt.V(t, p.BranchRegex).Equal("")
	gt.V(t, p.FileRegex).Equal("")
}

func TestUnknownFieldsAreIgnored(t *testing.T) {
	src := &model.ProjectDefinition{Name: "core", BranchRegex: "main"}
	b := src.MarshalProto()

	// unknown length-delimited, varint and fixed64 fields
	b = protowire.AppendTag(b, 99, protowire.BytesType)
	b = protowire.AppendString(b, "future")
	b = protowire.AppendTag(b, 100, protowire.VarintType)
	b = protowire.AppendVarint(b, 42)
	b = protowire.AppendTag(b, 101, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, 7)
	// known field number with an unexpected wire type
	b = protowire.AppendTag(b, 3, protowire.VarintType)
	b = protowire.AppendVarint(b, 1)

	var dst model.ProjectDefinition
	gt.NoError(t, dst.UnmarshalProto(b))
	gt.V(t, &dst).Equal(src)
}

func TestMalformedPayload(t *testing.T) {
	t.Run("truncated length", func(t *testing.T) {
		b := []byte{0x0a, 0x10, 'a'}
		var p model.ProjectDefinition
		err := p.UnmarshalProto(b)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrMalformedRequest))
	})

	t.Run("invalid field number", func(t *testing.T) {
		var req model.GetProjectsRequest
		err := req.UnmarshalProto([]byte{0x02, 0x00})
		gt.True(t, errors.Is(err, types.ErrMalformedRequest))
	})

	t.Run("invalid UTF-8", func(t *testing.T) {
		b := []byte{0x0a, 0x02, 0xff, 0xfe}
		var req model.GetProjectsRequest
		err := req.UnmarshalProto(b)
		gt.True(t, errors.Is(err, types.ErrMalformedRequest))
	})

	t.Run("broken nested message", func(t *testing.T) {
		b := []byte{0x0a, 0x02, 0x0a, 0x05}
		var resp model.GetProjectsResponse
		err := resp.UnmarshalProto(b)
		gt.True(t, errors.Is(err, types.ErrMalformedRequest))
	})

	t.Run("parameter-less request still checks framing", func(t *testing.T) {
		err := (&model.GetAboutRequest{}).UnmarshalProto([]byte{0x0a})
		gt.True(t, errors.Is(err, types.ErrMalformedRequest))
	})
}

func TestAboutResponseMergesRepeatedField(t *testing.T) {
	first := (&model.About{Version: "1.0.0", Links: []*model.AboutLink{{Name: "a"}}}).MarshalProto()
	second := (&model.About{Version: "1.1.0", Links: []*model.AboutLink{{Name: "b"}}}).MarshalProto()

	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendBytes(b, first)
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendBytes(b, second)

	var resp model.GetAboutResponse
	gt.NoError(t, resp.UnmarshalProto(b))
	gt.V(t, resp.About.Version).Equal("1.1.0")
	gt.V(t, len(resp.About.Links)).Equal(2)
}

// buildSchema describes the wire schema with protobuf descriptors so that the
// hand-written codec can be checked against the reference implementation.
func buildSchema(t *testing.T) protoreflect.FileDescriptor {
	t.Helper()

	field := func(name string, num int32, repeated bool, typeName string) *descriptorpb.FieldDescriptorProto {
		fd := &descriptorpb.FieldDescriptorProto{
			Name:   proto.String(name),
			Number: proto.Int32(num),
			Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
			Type:   descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
		}
		if repeated {
			fd.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
		}
		if typeName != "" {
			fd.Type = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum()
			fd.TypeName = proto.String(typeName)
		}
		return fd
	}

	file := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("monocle/config.proto"),
		Package: proto.String("monocle_config"),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("ProjectDefinition"),
				Field: []*descriptorpb.FieldDescriptorProto{
					field("name", 1, false, ""),
					field("repository_regex", 2, false, ""),
					field("branch_regex", 3, false, ""),
					field("file_regex", 4, false, ""),
				},
			},
			{
				Name: proto.String("GetProjectsResponse"),
				Field: []*descriptorpb.FieldDescriptorProto{
					field("projects", 1, true, ".monocle_config.ProjectDefinition"),
				},
			},
			{
				Name: proto.String("About"),
				Field: []*descriptorpb.FieldDescriptorProto{
					field("version", 1, false, ""),
					field("links", 2, true, ".monocle_config.About.AboutLink"),
				},
				NestedType: []*descriptorpb.DescriptorProto{
					{
						Name: proto.String("AboutLink"),
						Field: []*descriptorpb.FieldDescriptorProto{
							field("name", 1, false, ""),
							field("url", 2, false, ""),
							field("category", 3, false, ""),
						},
					},
				},
			},
		},
	}

	return gt.R1(protodesc.NewFile(file, nil)).NoError(t)
}

func TestCodecMatchesReferenceImplementation(t *testing.T) {
	fd := buildSchema(t)

	t.Run("ProjectDefinition encodes identically", func(t *testing.T) {
		md := fd.Messages().ByName("ProjectDefinition")
		msg := dynamicpb.NewMessage(md)
		msg.Set(md.Fields().ByName("name"), protoreflect.ValueOfString("core"))
		msg.Set(md.Fields().ByName("repository_regex"), protoreflect.ValueOfString(".*"))
		msg.Set(md.Fields().ByName("file_regex"), protoreflect.ValueOfString("プロジェクト"))

		expected := gt.R1(proto.MarshalOptions{Deterministic: true}.Marshal(msg)).NoError(t)

		p := &model.ProjectDefinition{Name: "core", RepositoryRegex: ".*", FileRegex: "プロジェクト"}
		gt.V(t, p.MarshalProto()).Equal(expected)
	})

	t.Run("reference decoder reads our encoding", func(t *testing.T) {
		md := fd.Messages().ByName("GetProjectsResponse")
		resp := &model.GetProjectsResponse{
			Projects: []*model.ProjectDefinition{
				{Name: "core", BranchRegex: "main"},
				{Name: "web"},
			},
		}

		msg := dynamicpb.NewMessage(md)
		gt.NoError(t, proto.Unmarshal(resp.MarshalProto(), msg))

		list := msg.Get(md.Fields().ByName("projects")).List()
		gt.V(t, list.Len()).Equal(2)
		first := list.Get(0).Message()
		pmd := fd.Messages().ByName("ProjectDefinition")
		gt.V(t, first.Get(pmd.Fields().ByName("name")).String()).Equal("core")
		gt.V(t, first.Get(pmd.Fields().ByName("branch_regex")).String()).Equal("main")
		gt.V(t, list.Get(1).Message().Get(pmd.Fields().ByName("name")).String()).Equal("web")
	})

	t.Run("we decode reference encoding with unknown fields", func(t *testing.T) {
		md := fd.Messages().ByName("About")
		linkMD := md.Messages().ByName("AboutLink")

		msg := dynamicpb.NewMessage(md)
		msg.Set(md.Fields().ByName("version"), protoreflect.ValueOfString("1.2.0"))
		links := msg.Mutable(md.Fields().ByName("links")).List()
		link := links.NewElement()
		link.Message().Set(linkMD.Fields().ByName("name"), protoreflect.ValueOfString("docs"))
		link.Message().Set(linkMD.Fields().ByName("url"), protoreflect.ValueOfString("https://example/docs"))
		link.Message().Set(linkMD.Fields().ByName("category"), protoreflect.ValueOfString("reference"))
		links.Append(link)

		unknown := protowire.AppendTag(nil, 15, protowire.VarintType)
		unknown = protowire.AppendVarint(unknown, 1)
		msg.SetUnknown(unknown)

		raw := gt.R1(proto.Marshal(msg)).NoError(t)

		var about model.About
		gt.NoError(t, about.UnmarshalProto(raw))
		gt.V(t, &about).Equal(&model.About{
			Version: "1.2.0",
			Links: []*model.AboutLink{
				{Name: "docs", URL: "https://example/docs", Category: "reference"},
			},
		})
	})
}
