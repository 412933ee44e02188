package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sproutml/sprout/tree"
	treejson "github.com/sproutml/sprout/tree/json"
	"github.com/sproutml/sprout/tree/redisstore"
	"gopkg.in/redis.v5"
)

const redisTreePrefix = "sprout:trees"

func saveTree(ctx context.Context, output, name string, t *tree.Tree) error {
	if strings.HasPrefix(output, "redis://") {
		store, err := redisTreeStore(output)
		if err != nil {
			return err
		}
		return store.Save(ctx, name, t)
	}
	var f *os.File
	if output == "" {
		f = os.Stdout
	} else {
		var err error
		f, err = os.Create(output)
		if err != nil {
			return fmt.Errorf("creating tree file %s: %v", output, err)
		}
		defer f.Close()
	}
	return treejson.WriteJSONTree(t, f)
}

func loadTree(ctx context.Context, input, name string) (*tree.Tree, error) {
	if strings.HasPrefix(input, "redis://") {
		store, err := redisTreeStore(input)
		if err != nil {
			return nil, err
		}
		return store.Load(ctx, name)
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("opening tree file %s: %v", input, err)
	}
	defer f.Close()
	return treejson.ReadJSONTree(f)
}

func redisTreeStore(url string) (*redisstore.Store, error) {
	options, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url %s: %v", url, err)
	}
	return redisstore.New(redis.NewClient(options), redisTreePrefix), nil
}
