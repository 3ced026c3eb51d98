package cmd

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/Digital-Shane/imdbkit/internal/provider"
)

const providerName = "imdb"

// printJSON writes v to the command's output as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	data = append(data, '\n')
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// emptyRecord is implemented by every top-level record.
type emptyRecord interface {
	IsEmpty() bool
}

// printRecord prints rec, or reports NOT_FOUND when a lookup came back
// without an identity.
func printRecord(cmd *cobra.Command, kind, id string, rec emptyRecord, err error) error {
	if err != nil {
		return fail(err)
	}
	if rec.IsEmpty() {
		return fail(fmt.Errorf("%s %s: %w", kind, id, provider.ErrNotFound))
	}
	return printJSON(cmd, rec)
}

// fail classifies err for reporting. The message carries the code so scripts
// can tell a retryable failure from a bad id.
func fail(err error) error {
	mapped := provider.MapError(providerName, err)
	pe, ok := mapped.(*provider.ProviderError)
	if !ok {
		return mapped
	}
	if pe.Retry {
		return fmt.Errorf("%s [%s, retryable]: %w", pe.Provider, pe.Code, mapped)
	}
	return fmt.Errorf("%s [%s]: %w", pe.Provider, pe.Code, mapped)
}
