// SPDX-License-Identifier: MIT
// Command rotgraph builds reconstruction trees from a YAML rotation dataset
// and answers plate-rotation queries.
package main

import "github.com/katalvlaran/rotgraph/cmd/rotgraph/cmd"

func main() {
	cmd.Execute()
}
