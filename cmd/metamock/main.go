// Command metamock inspects item-metadata fixtures used by plugin tests.
package main

import "github.com/mesh-intelligence/metamock/internal/cli"

func main() {
	cli.Execute()
}
