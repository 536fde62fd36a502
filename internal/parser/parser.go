/**
 * Copyright (c) 2024 Peking University and Peking University
 * Changsha Institute for Computing and Digital Economy
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

// Package parser implements the queue filter expression language:
// whitespace separated key=value terms, values optionally quoted.
package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	filterLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_.-]*`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Operator", Pattern: `=`},
		{Name: "Whitespace", Pattern: `\s+`},
	})
)

type Expression struct {
	Filters []*Filter `parser:"@@+"`
}

type Filter struct {
	Key   string `parser:"@Ident '='"`
	Value string `parser:"(@String | @Ident)"`
}

func GetParser() *participle.Parser[Expression] {
	return participle.MustBuild[Expression](
		participle.Lexer(filterLexer),
		participle.Unquote("String"),
		participle.Elide("Whitespace"),
	)
}

func Parse(s string) (*Expression, error) {
	parser := GetParser()
	expr, err := parser.ParseString("", s)
	if err != nil {
		return nil, err
	}
	return expr, nil
}
