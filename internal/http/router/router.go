package router

import (
	"strings"

	"http_pls/internal/http/message"
)

type Kind int

const (
	KindRoot Kind = iota
	KindEcho
	KindUserAgent
	KindFileGet
	KindFilePost
	KindNotFound
)

// Route is a resolved dispatch target. Arg carries the echo text or the
// file name for the kinds that have one.
type Route struct {
	Kind Kind
	Arg  string
}

// Resolve matches the path split on "/" (leading empty segment discarded),
// plus the method for the files routes. Anything else is KindNotFound.
func Resolve(line message.RequestLine) Route {
	segments := strings.Split(line.Path, "/")[1:]

	switch {
	case len(segments) == 1 && segments[0] == "":
		return Route{Kind: KindRoot}
	case len(segments) == 2 && segments[0] == "echo":
		return Route{Kind: KindEcho, Arg: segments[1]}
	case len(segments) == 1 && segments[0] == "user-agent":
		return Route{Kind: KindUserAgent}
	case len(segments) == 2 && segments[0] == "files" && line.Method == "GET":
		return Route{Kind: KindFileGet, Arg: segments[1]}
	case len(segments) == 2 && segments[0] == "files" && line.Method == "POST":
		return Route{Kind: KindFilePost, Arg: segments[1]}
	default:
		return Route{Kind: KindNotFound}
	}
}
