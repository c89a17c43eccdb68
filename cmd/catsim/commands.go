package main

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// command is one REPL verb with its aliases.
type command struct {
	canonical string
	aliases   []string
	minArgs   int
	usage     string
}

var commands = []command{
	{canonical: "help", aliases: []string{"h", "?"}, usage: "help"},
	{canonical: "status", aliases: []string{"st", "info"}, usage: "status"},
	{canonical: "cats", aliases: []string{"roster", "ls"}, usage: "cats"},
	{canonical: "market", aliases: []string{"shop", "inventory"}, usage: "market"},
	{canonical: "collection", aliases: []string{"coll", "traits"}, usage: "collection"},
	{canonical: "breed", aliases: []string{"pair"}, minArgs: 2, usage: "breed <idA> <idB>"},
	{canonical: "unbreed", aliases: []string{"unpair"}, minArgs: 2, usage: "unbreed <idA> <idB>"},
	{canonical: "sell", aliases: []string{"list"}, minArgs: 1, usage: "sell <id>"},
	{canonical: "unsell", aliases: []string{"unlist"}, minArgs: 1, usage: "unsell <id>"},
	{canonical: "buy", aliases: []string{"purchase"}, minArgs: 1, usage: "buy <market slot 1-3>"},
	{canonical: "furnish", aliases: []string{"furniture"}, minArgs: 1, usage: "furnish <toy|bed|cat-tree>"},
	{canonical: "favourite", aliases: []string{"fav", "favorite"}, minArgs: 1, usage: "favourite <id>"},
	{canonical: "value", aliases: []string{"appraise"}, minArgs: 1, usage: "value <id>"},
	{canonical: "next", aliases: []string{"turn", "end", "sleep"}, usage: "next"},
	{canonical: "save", aliases: nil, usage: "save"},
	{canonical: "export", aliases: nil, usage: "export"},
	{canonical: "quit", aliases: []string{"exit", "q"}, usage: "quit"},
}

// matchCommand resolves a typed verb to a canonical command, tolerating
// small typos via edit distance.
func matchCommand(verb string) (command, bool) {
	verb = strings.ToLower(strings.TrimSpace(verb))
	if verb == "" {
		return command{}, false
	}

	best := command{}
	bestDist := -1
	for _, c := range commands {
		for _, candidate := range append([]string{c.canonical}, c.aliases...) {
			if candidate == verb {
				return c, true
			}
			dist := levenshtein.ComputeDistance(verb, candidate)
			if dist <= distanceLimit(len(candidate)) && (bestDist == -1 || dist < bestDist) {
				best = c
				bestDist = dist
			}
		}
	}
	if bestDist == -1 {
		return command{}, false
	}
	return best, true
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
