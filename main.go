// SPDX-License-Identifier: Apache-2.0
package main

import (
	"mica/repl"
)

func main() {
	repl.Start()
}
