package main

import (
	"fmt"
	"os"

	"github.com/sanity-tools/contentful-to-sanity/internal/migrate"
	"github.com/sanity-tools/contentful-to-sanity/pkg/interop"
)

func main() {
	i, err := interop.NewInteroperability()
	if err != nil {
		fmt.Printf("failed to create interop: %s\n", err)
		os.Exit(1)
	}

	defer i.Shutdown()

	migrator, err := migrate.New(i)
	if err != nil {
		fmt.Printf("migration failed: %s\n", err)
		os.Exit(2)
	}

	err = migrator.Run()
	if err != nil {
		fmt.Printf("migration failed: %s\n", err)
		os.Exit(3)
	}
}
