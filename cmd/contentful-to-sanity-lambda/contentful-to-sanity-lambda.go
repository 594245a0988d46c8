package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sanity-tools/contentful-to-sanity/internal/migrate"
	"github.com/sanity-tools/contentful-to-sanity/pkg/interop"
)

type MigrationResult struct {
	Success bool
	Message error
}

func HandleRequest(ctx context.Context) (MigrationResult, error) {
	i, err := interop.NewInteroperability()
	if err != nil {
		retErr := fmt.Errorf("failed to create interop: %s", err)
		return MigrationResult{false, retErr}, retErr
	}

	defer i.Shutdown()

	migrator, err := migrate.New(i)
	if err != nil {
		retErr := fmt.Errorf("migration failed: %s", err)
		return MigrationResult{false, retErr}, retErr
	}

	err = migrator.Run()
	if err != nil {
		retErr := fmt.Errorf("migration failed: %s", err)
		return MigrationResult{false, retErr}, retErr
	}

	return MigrationResult{true, nil}, nil
}

func main() {
	lambda.Start(HandleRequest)
}
