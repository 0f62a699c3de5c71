// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"testing"

	md2man "github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/stretchr/testify/assert"
)

const sample = "# datactx filter\n\n" +
	"## Short description\n\n" +
	"Print every record matching\nthe filter.\n\n" +
	"## Quick examples\n\n" +
	"```sh\n" +
	"# Core team members\n" +
	"datactx filter users -f team=core\n\n" +
	"datactx   filter users -f id@1|2\n" +
	"```\n"

func TestExtractTitleAndShortDesc(t *testing.T) {
	title, short := extractTitleAndShortDesc(sample)
	assert.Equal(t, "datactx filter", title)
	assert.Equal(t, "Print every record matching the filter.", short)

	title, short = extractTitleAndShortDesc("# datactx keys\n")
	assert.Equal(t, "datactx keys", title)
	assert.Equal(t, "datactx keys.", short)
}

func TestExtractQuickExamples(t *testing.T) {
	exs := extractQuickExamples(sample)
	assert.Equal(t, []example{
		{Desc: "Core team members", Cmd: "datactx filter users -f team=core"},
		{Desc: "Example", Cmd: "datactx filter users -f id@1|2"},
	}, exs)

	assert.Nil(t, extractQuickExamples("# nothing here\n"))
}

func TestBuildTLDR(t *testing.T) {
	got := buildTLDR("filter", "datactx filter", "Print matches.", []example{{Desc: "All", Cmd: "datactx filter users"}})
	assert.Equal(t, "# datactx-filter\n\n"+
		"> Print matches.\n"+
		"> More information: https://github.com/staranto/datactx.\n\n"+
		"- All:\n\n"+
		"`datactx filter users`\n", got)

	assert.Contains(t, buildTLDR("keys", "", "", nil), "`datactx keys --help`")
}

func TestManRender(t *testing.T) {
	out := string(md2man.Render([]byte(sample)))
	assert.Contains(t, out, ".SH")
}
