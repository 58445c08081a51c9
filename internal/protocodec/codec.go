// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocodec

import (
	"fmt"
	"math"

	"github.com/MKhiriev/receitas-client/models"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/dynamicpb"
)

// Codec converts between the ListaReceitas wire format and
// [models.RecipeList]. A Codec is immutable after [New] and safe to share.
type Codec struct {
	types *protoregistry.Types

	listType protoreflect.MessageType

	entriesField  protoreflect.FieldDescriptor
	idField       protoreflect.FieldDescriptor
	nameField     protoreflect.FieldDescriptor
	categoryField protoreflect.FieldDescriptor
}

// New compiles the favorites schema, registers its message types and probes
// that both can be resolved by full name. Any failure is reported as
// [ErrSchemaUnavailable].
func New() (*Codec, error) {
	fd, err := protodesc.NewFile(schemaDescriptor(), new(protoregistry.Files))
	if err != nil {
		return nil, fmt.Errorf("%w: compile %s: %w", ErrSchemaUnavailable, schemaFile, err)
	}

	types := new(protoregistry.Types)
	messages := fd.Messages()
	for i := 0; i < messages.Len(); i++ {
		if err = types.RegisterMessage(dynamicpb.NewMessageType(messages.Get(i))); err != nil {
			return nil, fmt.Errorf("%w: register %s: %w", ErrSchemaUnavailable, messages.Get(i).FullName(), err)
		}
	}

	return newCodec(types)
}

func newCodec(types *protoregistry.Types) (*Codec, error) {
	listType, err := types.FindMessageByName(fullName(listMessageName))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSchemaUnavailable, fullName(listMessageName), err)
	}
	entryType, err := types.FindMessageByName(fullName(entryMessageName))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSchemaUnavailable, fullName(entryMessageName), err)
	}

	c := &Codec{
		types:         types,
		listType:      listType,
		entriesField:  listType.Descriptor().Fields().ByName(listFieldEntries),
		idField:       entryType.Descriptor().Fields().ByName(entryFieldID),
		nameField:     entryType.Descriptor().Fields().ByName(entryFieldName),
		categoryField: entryType.Descriptor().Fields().ByName(entryFieldCategory),
	}
	if c.entriesField == nil || c.idField == nil || c.nameField == nil || c.categoryField == nil {
		return nil, fmt.Errorf("%w: missing fields in %s", ErrSchemaUnavailable, schemaFile)
	}

	return c, nil
}

// Decode parses a ListaReceitas body. The result has exactly as many entries
// as the payload encodes, in payload order. An empty body decodes to an
// empty list.
func (c *Codec) Decode(payload []byte) (models.RecipeList, error) {
	msg := c.listType.New()
	if err := proto.Unmarshal(payload, msg.Interface()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	entries := msg.Get(c.entriesField).List()
	list := make(models.RecipeList, 0, entries.Len())
	for i := 0; i < entries.Len(); i++ {
		entry := entries.Get(i).Message()
		list = append(list, models.RecipeEntry{
			ID:       entry.Get(c.idField).Int(),
			Name:     entry.Get(c.nameField).String(),
			Category: entry.Get(c.categoryField).String(),
		})
	}

	return list, nil
}

// Encode serialises list in the same wire format the server uses. Ids
// outside the int32 range are rejected with [ErrIDOutOfRange].
func (c *Codec) Encode(list models.RecipeList) ([]byte, error) {
	msg := c.listType.New()
	entries := msg.Mutable(c.entriesField).List()
	for _, e := range list {
		if e.ID < math.MinInt32 || e.ID > math.MaxInt32 {
			return nil, fmt.Errorf("%w: %d (%q)", ErrIDOutOfRange, e.ID, e.Name)
		}
		entry := entries.NewElement().Message()
		entry.Set(c.idField, protoreflect.ValueOfInt32(int32(e.ID)))
		entry.Set(c.nameField, protoreflect.ValueOfString(e.Name))
		entry.Set(c.categoryField, protoreflect.ValueOfString(e.Category))
		entries.Append(protoreflect.ValueOfMessage(entry))
	}

	payload, err := proto.Marshal(msg.Interface())
	if err != nil {
		return nil, fmt.Errorf("encode favorites payload: %w", err)
	}
	return payload, nil
}

func fullName(message string) protoreflect.FullName {
	return protoreflect.FullName(schemaPackage + "." + message)
}
