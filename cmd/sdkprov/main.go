package main

import "github.com/agentpkg/sdkprov/pkg/cmd"

func main() {
	cmd.Execute()
}
