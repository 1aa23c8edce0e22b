// Package cmd provides the emit command that translates dotkv language
// files into structured text documents.
package cmd
