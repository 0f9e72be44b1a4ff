package main

import "github.com/ajroetker/fixedvec/hwy"

var _ hwy.Vector[int32, [4]int32]

func main() {}
