/*
Copyright © 2025 Brian Rzycki <brzycki@gmail.com>
*/
package main

import "github.com/bmrzycki/lcus-relay/internal/cli"

func main() {
	cli.Execute()
}
