package contentrec

// Assembler fills a document template with extracted content.
//
// The placeholder names recognized by implementations are the content
// contract with template authors: [PAGE], [DATE], [URL], [TITLE],
// [TITLE LENGTH], [DESCRIPTION], [DESCRIPTION LENGTH], [AGENCY],
// [CLIENT NAME], plus the line-block placeholders [PAGE BODY CONTENT]
// (required) and [SCHEMA] (optional).
type Assembler interface {
	// Assemble replaces placeholders in the template with values from meta
	// and expands the body-content placeholder into one paragraph per
	// rendered line. Returns ENOTFOUND if the template is missing the
	// body-content placeholder.
	Assemble(template []byte, meta Meta, lines []string) ([]byte, error)
}
