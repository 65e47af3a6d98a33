package cv

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/google/uuid"
)

type Parser struct {
	uploadsDir string
}

// ParsedResume is the raw text recovered from an uploaded resume file,
// before any employment-history extraction.
type ParsedResume struct {
	Filename string
	StoredAs string
	FileType string
	FileSize int64
	FullText string
}

func NewParser(uploadsDir string) *Parser {
	return &Parser{
		uploadsDir: uploadsDir,
	}
}

// ParseFile saves the upload under a collision-safe name and extracts its
// text. PDF/DOCX/DOC/RTF/ODT go through docconv; TXT is read directly.
func (p *Parser) ParseFile(filename string, reader io.Reader) (*ParsedResume, error) {
	if err := os.MkdirAll(p.uploadsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}

	// Prefix with a UUID so two "resume.pdf" uploads never clobber each other.
	storedAs := uuid.New().String() + "_" + filepath.Base(filename)
	filePath := filepath.Join(p.uploadsDir, storedAs)

	file, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	size, err := io.Copy(file, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	fileType := strings.ToLower(filepath.Ext(filename))
	var text string

	switch fileType {
	case ".pdf", ".docx", ".doc", ".rtf", ".odt":
		res, err := docconv.ConvertPath(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse document: %w", err)
		}
		text = res.Body
	case ".txt":
		content, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read text file: %w", err)
		}
		text = string(content)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", fileType)
	}

	return &ParsedResume{
		Filename: filename,
		StoredAs: storedAs,
		FileType: fileType,
		FileSize: size,
		FullText: text,
	}, nil
}

// SupportedType reports whether a file extension can be parsed.
func SupportedType(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".docx", ".doc", ".rtf", ".odt", ".txt":
		return true
	}
	return false
}
