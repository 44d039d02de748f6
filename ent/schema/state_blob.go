package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StateBlob holds one persisted application-state document per namespace
// (in-progress session, user preferences). Overwritten in place on every
// save; cleared by deleting the row.
type StateBlob struct {
	ent.Schema
}

func (StateBlob) Fields() []ent.Field {
	return []ent.Field{
		field.String("namespace").
			Unique().
			NotEmpty(),
		field.JSON("data", map[string]any{}),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (StateBlob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("namespace"),
	}
}
