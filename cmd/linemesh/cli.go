// seehuhn.de/go/linemesh - antialiased line meshes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"flag"
)

type cliOpts struct {
	configFile string
	format     string
	output     string
	initConfig bool
	doLog      bool
}

func parseCLIOpts() cliOpts {
	var opt cliOpts
	flag.StringVar(&opt.configFile, "c", "", "TOML config file (default: built-in demo line)")
	flag.StringVar(&opt.format, "f", "json", "output format: json, bin, png or pdf")
	flag.StringVar(&opt.output, "o", "-", "output file, - for stdout")
	flag.BoolVar(&opt.initConfig, "init", false, "write the default config to the -c file and exit")
	flag.BoolVar(&opt.doLog, "log", false, "print debugging output to stderr")
	flag.Parse()

	return opt
}
