// Command add-namespace injects a namespace into a stream of Kubernetes
// manifests read from stdin.
package main

import "github.com/cameronsjo/pipetools/internal/cmd"

func main() {
	cmd.ExecuteAddNamespace()
}
