// Package markdown turns delimited-block text records into articles. A
// physical file holds one or more records: each record is a front-matter
// metadata block fenced by `---` lines followed by a Markdown body, and
// multiple records in one file are separated by an explicit separator token.
// Every record is parsed and validated independently so one malformed record
// never blocks the rest of the corpus.
package markdown
