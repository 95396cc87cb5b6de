package main

import (
	"fmt"

	"chatbot/pkg/version"
)

const programName = "chatbot"

func printVersion() {
	fmt.Print(version.Details(programName))
}
