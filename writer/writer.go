// Package writer serializes a document into a complete PDF 1.4 file
// image: object graph, cross-reference table and trailer.
//
// Object identifiers are dense and allocated in a fixed order so the
// cross-reference table can be emitted without gaps: catalog, pages tree,
// the two shared fonts, then one (page, content stream) pair per page.
package writer

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/wudi/resumekit/contentstream"
	"github.com/wudi/resumekit/document"
)

const (
	catalogObject     = 1
	pagesObject       = 2
	fontRegularObject = 3
	fontBoldObject    = 4
	firstPageObject   = 5
)

// header includes the binary comment line so transfer tools treat the
// file as binary.
const header = "%PDF-1.4\n%\xe2\xe3\xcf\xd3\n"

// Write assembles the full PDF byte stream for doc in memory.
func Write(doc *document.Document) ([]byte, error) {
	if doc.PageCount() == 0 {
		return nil, fmt.Errorf("document has no pages")
	}

	objects := map[int][]byte{
		catalogObject:     []byte("<< /Type /Catalog /Pages 2 0 R >>"),
		fontRegularObject: []byte("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>"),
		fontBoldObject:    []byte("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold >>"),
	}

	pageIDs := make([]int, 0, doc.PageCount())
	nextID := firstPageObject
	for _, p := range doc.Pages {
		pageID, contentID := nextID, nextID+1
		nextID += 2
		pageIDs = append(pageIDs, pageID)

		stream := contentstream.Serialize(p)
		var content bytes.Buffer
		fmt.Fprintf(&content, "<< /Length %d >>\nstream\n", len(stream))
		content.Write(stream)
		content.WriteString("endstream")
		objects[contentID] = content.Bytes()

		objects[pageID] = fmt.Appendf(nil,
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Resources << /Font << /F1 3 0 R /F2 4 0 R >> >> /Contents %d 0 R >>",
			int(doc.Width), int(doc.Height), contentID)
	}

	kids := make([]string, len(pageIDs))
	for i, id := range pageIDs {
		kids[i] = fmt.Sprintf("%d 0 R", id)
	}
	objects[pagesObject] = fmt.Appendf(nil,
		"<< /Type /Pages /Count %d /Kids [%s] >>", len(pageIDs), strings.Join(kids, " "))

	ordered := make([]int, 0, len(objects))
	for id := range objects {
		ordered = append(ordered, id)
	}
	sort.Ints(ordered)

	var buf bytes.Buffer
	buf.WriteString(header)
	offsets := make(map[int]int, len(objects))
	for _, id := range ordered {
		offsets[id] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n", id)
		buf.Write(objects[id])
		buf.WriteString("\nendobj\n")
	}

	xrefPos := buf.Len()
	maxID := ordered[len(ordered)-1]
	fmt.Fprintf(&buf, "xref\n0 %d\n", maxID+1)
	buf.WriteString("0000000000 65535 f \n")
	for id := 1; id <= maxID; id++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[id])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		maxID+1, catalogObject, xrefPos)

	return buf.Bytes(), nil
}

// WriteFile assembles the whole PDF in memory first and writes it with a
// single call, so a failed run never leaves a partially serialized file.
// It returns the number of bytes written.
func WriteFile(path string, doc *document.Document) (int, error) {
	data, err := Write(doc)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("write pdf: %w", err)
	}
	return len(data), nil
}
