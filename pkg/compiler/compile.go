package compiler

// Compile runs the full front end on src: lexical scan, delimiter
// validation, then jump-target resolution. It returns the flat program ready
// for the machine, or the first stage error. No stage starts until the
// previous one has succeeded, so a structurally invalid program never
// reaches the code generator.
func Compile(src string) (Program, error) {
	tokens, err := Parse(Lex(src), src)
	if err != nil {
		return nil, err
	}
	return Generate(tokens), nil
}
