package protocodec

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

const (
	schemaFile    = "receitas.proto"
	schemaPackage = "receitas"

	listMessageName  = "ListaReceitas"
	entryMessageName = "Receita"

	listFieldEntries   = "receitas"
	entryFieldID       = "id"
	entryFieldName     = "name"
	entryFieldCategory = "category"
)

// schemaDescriptor returns the descriptor of proto/receitas.proto. Keep the
// two in sync: field numbers are part of the wire contract with the server.
func schemaDescriptor() *descriptorpb.FileDescriptorProto {
	optional := descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum()
	repeated := descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()

	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String(schemaFile),
		Package: proto.String(schemaPackage),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String(entryMessageName),
				Field: []*descriptorpb.FieldDescriptorProto{
					{
						Name:     proto.String(entryFieldID),
						JsonName: proto.String("id"),
						Number:   proto.Int32(1),
						Label:    optional,
						Type:     descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum(),
					},
					{
						Name:     proto.String(entryFieldName),
						JsonName: proto.String("name"),
						Number:   proto.Int32(2),
						Label:    optional,
						Type:     descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
					},
					{
						Name:     proto.String(entryFieldCategory),
						JsonName: proto.String("category"),
						Number:   proto.Int32(3),
						Label:    optional,
						Type:     descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
					},
				},
			},
			{
				Name: proto.String(listMessageName),
				Field: []*descriptorpb.FieldDescriptorProto{
					{
						Name:     proto.String(listFieldEntries),
						JsonName: proto.String("receitas"),
						Number:   proto.Int32(1),
						Label:    repeated,
						Type:     descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum(),
						TypeName: proto.String("." + schemaPackage + "." + entryMessageName),
					},
				},
			},
		},
	}
}
