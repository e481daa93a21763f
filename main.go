package main

import "github.com/s3h4n/DL-Sorter/cmd"

func main() {
	cmd.Execute()
}
