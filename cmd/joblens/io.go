package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/themohitbharti/joblens/internal/schemas"
	"github.com/themohitbharti/joblens/internal/types"
)

// readInput reads path, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return data, nil
}

// readDocuments decodes either one document or a JSON array of documents. The
// second return value reports whether the input was an array.
func readDocuments(cmd *cobra.Command, path string) ([]types.Document, bool, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, false, err
	}

	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		var docs []types.Document
		if err := json.Unmarshal(trimmed, &docs); err != nil {
			return nil, true, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if len(docs) == 0 {
			return nil, true, fmt.Errorf("%s: no documents", path)
		}
		for i, doc := range docs {
			if doc.Results == nil {
				return nil, true, fmt.Errorf("%s[%d]: %w: missing \"results\"", path, i, types.ErrMalformedResultSet)
			}
		}
		return docs, true, nil
	}

	doc, err := decodeDocument(data, path)
	if err != nil {
		return nil, false, err
	}
	return []types.Document{doc}, false, nil
}

func readDocument(cmd *cobra.Command, path string) (types.Document, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return types.Document{}, err
	}
	return decodeDocument(data, path)
}

func decodeDocument(data []byte, path string) (types.Document, error) {
	var doc types.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return types.Document{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if doc.Results == nil {
		return types.Document{}, fmt.Errorf("%s: %w: missing \"results\"", path, types.ErrMalformedResultSet)
	}
	return doc, nil
}

// writeJSON writes v indented to path, or to the command's stdout when path is
// empty.
func writeJSON(cmd *cobra.Command, path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	jsonBytes = append(jsonBytes, '\n')

	if path == "" {
		_, err = cmd.OutOrStdout().Write(jsonBytes)
		return err
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// checkOutput validates an outgoing document against its schema. A mismatch is
// logged, not returned.
func checkOutput(schema string, v any) {
	if err := schemas.ValidateValue(schema, v); err != nil {
		zlog.Warn("output does not match schema", zap.String("schema", schema), zap.Error(err))
	}
}
