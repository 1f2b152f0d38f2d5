// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/gclookup/gclookup/cmd/lookup"

func main() {
	cmd.Execute()
}
