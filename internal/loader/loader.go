// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package loader reads record collections from local files and S3 objects and
// caches them in a store.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	awsx "github.com/staranto/datactx/internal/aws"
	"github.com/staranto/datactx/internal/record"
	"github.com/staranto/datactx/internal/store"
)

// Options tune how remote sources are reached. The zero value uses the
// default AWS credential chain.
type Options struct {
	Profile string
	Region  string
	// S3 replaces the client built from Profile/Region when set.
	S3 awsx.ObjectGetter
}

// Load reads src, a local path or an s3://bucket/key URL, and decodes it by
// extension: .yaml/.yml as YAML, anything else as JSON.
func Load(ctx context.Context, src string, opts Options) ([]record.Record, error) {
	var (
		data []byte
		err  error
	)

	if strings.HasPrefix(src, "s3://") {
		data, err = readS3(ctx, src, opts)
	} else {
		data, err = os.ReadFile(src)
		if err != nil {
			err = fmt.Errorf("failed to read dataset: %w", err)
		}
	}
	if err != nil {
		return nil, err
	}

	records, err := Decode(data, filepath.Ext(src))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", src, err)
	}

	log.Debugf("loaded %d records from %s", len(records), src)
	return records, nil
}

// Into loads src into st under key unless key is already cached, and returns
// the collection.
func Into(ctx context.Context, st *store.Store, key, src string, opts Options) ([]record.Record, error) {
	v, err := st.Remember(key, func() (any, error) {
		return Load(ctx, src, opts)
	})
	if err != nil {
		return nil, err
	}

	records, ok := record.From(v)
	if !ok {
		return nil, fmt.Errorf("value cached under %q is not a record collection (%T)", key, v)
	}
	return records, nil
}

// Decode turns a JSON or YAML document into records. ext selects the format
// (".yaml" and ".yml" are YAML). The document must be an array of objects or
// a single object.
func Decode(data []byte, ext string) ([]record.Record, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return decodeYAML(data)
	default:
		return decodeJSON(data)
	}
}

func decodeJSON(data []byte) ([]record.Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid json")
	}

	doc := gjson.ParseBytes(data)
	switch {
	case doc.IsObject():
		return []record.Record{toRecord(doc)}, nil
	case doc.IsArray():
		rows := doc.Array()
		records := make([]record.Record, 0, len(rows))
		for i, row := range rows {
			if !row.IsObject() {
				return nil, fmt.Errorf("element %d is not an object", i)
			}
			records = append(records, toRecord(row))
		}
		return records, nil
	default:
		return nil, fmt.Errorf("document is not an object or array of objects")
	}
}

// decodeYAML routes YAML through JSON so numbers and nesting come out the
// same as for a JSON source.
func decodeYAML(data []byte) ([]record.Record, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("yaml is not json compatible: %w", err)
	}
	return decodeJSON(b)
}

func toRecord(obj gjson.Result) record.Record {
	m, _ := record.FromJSON(obj).(map[string]any)
	return record.Record(m)
}

func readS3(ctx context.Context, src string, opts Options) ([]byte, error) {
	bucket, key, err := awsx.ParseURL(src)
	if err != nil {
		return nil, err
	}

	client := opts.S3
	if client == nil {
		var awsOpts []awsx.Option
		if opts.Profile != "" {
			awsOpts = append(awsOpts, awsx.WithProfile(opts.Profile))
		}
		if opts.Region != "" {
			awsOpts = append(awsOpts, awsx.WithRegion(opts.Region))
		}
		cfg, err := awsx.LoadAWSConfig(ctx, awsOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to load aws config: %w", err)
		}
		client = awsx.NewS3(cfg)
	}

	return awsx.ReadObject(ctx, client, bucket, key)
}
