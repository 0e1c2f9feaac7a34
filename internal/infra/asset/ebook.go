package asset

import (
	"fmt"
	"os"
)

const ebookFilename = "The-Story-That-Sells-Framework.pdf"

// EbookProvider serves the static ebook payload. When no file path is
// configured it falls back to a small generated placeholder PDF so the
// download flow works end to end in development.
type EbookProvider struct {
	Path string
}

func NewEbookProvider(path string) *EbookProvider {
	return &EbookProvider{Path: path}
}

func (p *EbookProvider) Filename() string {
	return ebookFilename
}

func (p *EbookProvider) Fetch() ([]byte, error) {
	if p.Path == "" {
		return samplePDF(), nil
	}

	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("read ebook asset: %w", err)
	}
	return data, nil
}

// samplePDF builds a minimal single-page placeholder document.
func samplePDF() []byte {
	return []byte(`%PDF-1.4
1 0 obj
<<
/Type /Catalog
/Pages 2 0 R
>>
endobj

2 0 obj
<<
/Type /Pages
/Kids [3 0 R]
/Count 1
>>
endobj

3 0 obj
<<
/Type /Page
/Parent 2 0 R
/MediaBox [0 0 612 792]
/Contents 4 0 R
/Resources <<
/Font <<
/F1 5 0 R
>>
>>
>>
endobj

4 0 obj
<<
/Length 200
>>
stream
BT
/F1 24 Tf
100 700 Td
(The Story That Sells Framework) Tj
0 -50 Td
/F1 12 Tf
(Thank you for downloading our free ebook!) Tj
0 -30 Td
(This is a sample PDF. In production, you would serve) Tj
0 -20 Td
(a real PDF file with the complete framework.) Tj
ET
endstream
endobj

5 0 obj
<<
/Type /Font
/Subtype /Type1
/BaseFont /Helvetica
>>
endobj

xref
0 6
0000000000 65535 f
0000000009 00000 n
0000000058 00000 n
0000000115 00000 n
0000000274 00000 n
0000000525 00000 n
trailer
<<
/Size 6
/Root 1 0 R
>>
startxref
625
%%EOF`)
}
