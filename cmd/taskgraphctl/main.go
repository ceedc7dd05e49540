// Command taskgraphctl loads a frame configuration, builds its task
// graph, and reports the result as dot text, a JSON summary, or both.
package main

import "github.com/katalvlaran/taskgraph/cmd/taskgraphctl/cmd"

func main() {
	cmd.Execute()
}
