// Package gols holds the public types shared by the listing engine and its
// collaborators: the FileInfo snapshot, the ListConfig aggregate with its
// mode enums, the Logger interface, sentinel errors and exit codes.
package gols
