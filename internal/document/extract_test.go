package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_TextPassthrough(t *testing.T) {
	text, err := NewExtractor().Extract("cv.TXT", []byte("Go, Docker and Redis"))
	require.NoError(t, err)
	assert.Equal(t, "Go, Docker and Redis", text)
}

func TestExtract_Unsupported(t *testing.T) {
	_, err := NewExtractor().Extract("photo.png", []byte{0x89, 0x50})
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestExtract_BrokenPDF(t *testing.T) {
	_, err := NewExtractor().Extract("cv.pdf", []byte("not a pdf"))
	require.Error(t, err)
}

func TestStripDocxXML(t *testing.T) {
	in := `<w:body><w:p><w:r><w:t>Senior   Engineer</w:t></w:r></w:p><w:p><w:r><w:t>Python, Docker</w:t></w:r></w:p></w:body>`
	assert.Equal(t, "Senior Engineer\nPython, Docker", stripDocxXML(in))
}

func TestAllowedExtension(t *testing.T) {
	assert.True(t, AllowedExtension("resume.PDF"))
	assert.True(t, AllowedExtension("resume.docx"))
	assert.True(t, AllowedExtension("resume.txt"))
	assert.False(t, AllowedExtension("resume.doc"))
	assert.False(t, AllowedExtension("resume"))
	assert.Equal(t, "application/pdf", ContentType("a.pdf"))
	assert.Equal(t, "application/octet-stream", ContentType("a.exe"))
}
