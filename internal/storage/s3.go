// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/tfctl/vardiff/internal/log"
)

// S3API is the subset of the S3 client used by S3Backend.
type S3API interface {
	GetObject(ctx context.Context, in *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3v2.PutObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3v2.DeleteObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.DeleteObjectOutput, error)
}

// S3Options locate the blob and select AWS credentials. Empty Region and
// Profile inherit the shell's AWS setup (AWS_PROFILE, shared config, env,
// IMDS).
type S3Options struct {
	Bucket  string
	Prefix  string
	Region  string
	Profile string
}

// S3Backend keeps the blob in one S3 object, <Prefix>/<scope>.yaml.
type S3Backend struct {
	Client S3API
	Bucket string
	Key    string
}

// NewS3Backend loads the AWS config and returns an S3Backend for scope.
func NewS3Backend(ctx context.Context, scope string, opts S3Options) (*S3Backend, error) {
	if opts.Bucket == "" {
		return nil, errors.New("store.s3.bucket is required for the s3 backend")
	}

	var loadOpts []func(*awscfg.LoadOptions) error
	if opts.Profile != "" {
		loadOpts = append(loadOpts, awscfg.WithSharedConfigProfile(opts.Profile))
	}
	if opts.Region != "" {
		loadOpts = append(loadOpts, awscfg.WithRegion(opts.Region))
	}
	log.Debugf("aws loadOpts built: profile=%s region=%s", opts.Profile, opts.Region)

	cfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Backend{
		Client: s3v2.NewFromConfig(cfg),
		Bucket: opts.Bucket,
		Key:    ObjectKey(opts.Prefix, scope),
	}, nil
}

// ObjectKey returns the object key for scope under prefix.
func ObjectKey(prefix, scope string) string {
	return path.Join(prefix, scope+".yaml")
}

// Load implements Backend. A missing object is ErrNotFound.
func (b *S3Backend) Load(ctx context.Context) ([]byte, error) {
	out, err := b.Client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(b.Bucket),
		Key:    awsv2.String(b.Key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get S3 object: %w", err)
	}
	defer out.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read S3 object body: %w", err)
	}
	log.Debugf("s3 store read: %s bytes=%d", b, len(data))
	return data, nil
}

// Save implements Backend. A PutObject replaces the object atomically.
func (b *S3Backend) Save(ctx context.Context, data []byte) error {
	_, err := b.Client.PutObject(ctx, &s3v2.PutObjectInput{
		Bucket:      awsv2.String(b.Bucket),
		Key:         awsv2.String(b.Key),
		Body:        bytes.NewReader(data),
		ContentType: awsv2.String("application/yaml"),
	})
	if err != nil {
		return fmt.Errorf("failed to put S3 object: %w", err)
	}
	log.Debugf("s3 store write: %s bytes=%d", b, len(data))
	return nil
}

// Remove implements Backend. S3 deletes are idempotent.
func (b *S3Backend) Remove(ctx context.Context) error {
	if _, err := b.Client.DeleteObject(ctx, &s3v2.DeleteObjectInput{
		Bucket: awsv2.String(b.Bucket),
		Key:    awsv2.String(b.Key),
	}); err != nil {
		return fmt.Errorf("failed to delete S3 object: %w", err)
	}
	return nil
}

func (b *S3Backend) String() string {
	return "s3://" + b.Bucket + "/" + b.Key
}
