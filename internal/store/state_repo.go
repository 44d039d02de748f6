package store

import (
	"context"
	"fmt"

	"github.com/ishara/quizdeck/ent"
	"github.com/ishara/quizdeck/ent/stateblob"
)

// stateRepo implements StateRepo using the ent client.
type stateRepo struct {
	client *ent.Client
}

func (r *stateRepo) SaveBlob(ctx context.Context, namespace string, doc map[string]any) error {
	doc = SanitizeMap(doc)

	row, err := r.client.StateBlob.Query().
		Where(stateblob.Namespace(namespace)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = row.Update().SetData(doc).Save(ctx)
	case ent.IsNotFound(err):
		_, err = r.client.StateBlob.Create().
			SetNamespace(namespace).
			SetData(doc).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save state %s: %w", namespace, err)
	}
	return nil
}

func (r *stateRepo) LoadBlob(ctx context.Context, namespace string) (map[string]any, error) {
	row, err := r.client.StateBlob.Query().
		Where(stateblob.Namespace(namespace)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load state %s: %w", namespace, err)
	}
	return row.Data, nil
}

func (r *stateRepo) ClearBlob(ctx context.Context, namespace string) error {
	_, err := r.client.StateBlob.Delete().
		Where(stateblob.Namespace(namespace)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear state %s: %w", namespace, err)
	}
	return nil
}
