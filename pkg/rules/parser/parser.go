package parser

import (
	"fmt"
	"os"

	"ecworks/groundcover/pkg/rules/ast"
	rulesErrors "ecworks/groundcover/pkg/rules/errors"
)

// Parser parses YAML rule files into rule specifications.
type Parser struct {
	maxFileSize int64 // Maximum file size in bytes (default: 2MB)
}

// NewParser creates a new parser with default configuration.
func NewParser() *Parser {
	return &Parser{
		maxFileSize: 2 * 1024 * 1024, // 2MB
	}
}

// WithMaxFileSize sets the maximum file size limit.
func (p *Parser) WithMaxFileSize(size int64) *Parser {
	p.maxFileSize = size
	return p
}

// Parse parses a rule file at the given path. It returns an error if the
// file cannot be read, has invalid YAML syntax, or contains rules that
// cannot be represented.
func (p *Parser) Parse(path string) ([]*ast.RuleSpec, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, &rulesErrors.Error{
			Type:    rulesErrors.ErrorTypeIO,
			Message: fmt.Sprintf("failed to access rule file: %v", err),
		}
	}

	if fileInfo.Size() > p.maxFileSize {
		return nil, &rulesErrors.Error{
			Type:    rulesErrors.ErrorTypeIO,
			Message: fmt.Sprintf("rule file size %d exceeds maximum %d bytes", fileInfo.Size(), p.maxFileSize),
		}
	}

	file, err := parseYAMLFile(path)
	if err != nil {
		return nil, &rulesErrors.Error{
			Type:       rulesErrors.ErrorTypeSyntax,
			Message:    fmt.Sprintf("YAML parsing failed: %v", err),
			Suggestion: "check YAML syntax (indentation, colons, quotes)",
		}
	}

	return newBuilder().buildRules(file)
}

// ParseBytes parses rule YAML from a byte slice. This is useful for
// testing or loading rules from memory.
func (p *Parser) ParseBytes(data []byte) ([]*ast.RuleSpec, error) {
	if int64(len(data)) > p.maxFileSize {
		return nil, &rulesErrors.Error{
			Type:    rulesErrors.ErrorTypeIO,
			Message: fmt.Sprintf("rule data size %d exceeds maximum %d bytes", len(data), p.maxFileSize),
		}
	}

	file, err := parseYAMLBytes(data)
	if err != nil {
		return nil, &rulesErrors.Error{
			Type:       rulesErrors.ErrorTypeSyntax,
			Message:    fmt.Sprintf("YAML parsing failed: %v", err),
			Suggestion: "check YAML syntax (indentation, colons, quotes)",
		}
	}

	return newBuilder().buildRules(file)
}
