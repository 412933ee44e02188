/*
Package redisstore stores grown trees by name on a redis DB, so that
a tree grown by one process can be rendered or used to classify
samples by another.
*/
package redisstore

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/sproutml/sprout/tree"
	treejson "github.com/sproutml/sprout/tree/json"
	"gopkg.in/redis.v5"
)

/*
Store is a named-tree store backed by a redis DB. Trees are kept
serialized as JSON under keys built from a common prefix and the
tree name.
*/
type Store struct {
	rc     *redis.Client
	prefix string
}

// New builds a Store backed by the given redis client, keeping its
// trees under keys with the given prefix.
func New(rc *redis.Client, prefix string) *Store {
	return &Store{rc, prefix}
}

/*
Save takes a context.Context, a name and a pointer to a tree.Tree
and stores the tree on redis under the given name, replacing any
tree previously stored under it. It returns an error if the tree
cannot be serialized or stored.
*/
func (s *Store) Save(ctx context.Context, name string, t *tree.Tree) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := treejson.WriteJSONTree(t, &buf); err != nil {
		return fmt.Errorf("saving tree %q: encoding tree: %v", name, err)
	}
	if _, err := s.rc.Set(s.keyFor(name), buf.Bytes(), 0).Result(); err != nil {
		return fmt.Errorf("saving tree %q in redis: %v", name, err)
	}
	return nil
}

/*
Load takes a context.Context and a name and returns the tree stored
on redis under the given name, or an error if no tree is stored
under it or it cannot be retrieved or parsed.
*/
func (s *Store) Load(ctx context.Context, name string) (*tree.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := s.rc.Get(s.keyFor(name)).Result()
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q: %v", name, err)
	}
	t, err := treejson.ReadJSONTree(strings.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q: %v", name, err)
	}
	return t, nil
}

/*
List takes a context.Context and returns the names of the trees
stored on redis under the store's prefix or an error.
*/
func (s *Store) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	keys, err := s.rc.Keys(s.keyFor("*")).Result()
	if err != nil {
		return nil, fmt.Errorf("listing trees: %v", err)
	}
	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, strings.TrimPrefix(key, s.keyFor("")))
	}
	return names, nil
}

/*
Delete takes a context.Context and a name and removes the tree
stored on redis under the given name, if any. It returns an error
if the deletion cannot be performed.
*/
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.rc.Del(s.keyFor(name)).Result(); err != nil {
		return fmt.Errorf("deleting tree %q: %v", name, err)
	}
	return nil
}

func (s *Store) keyFor(name string) string {
	return fmt.Sprintf("%s:%s", s.prefix, name)
}
