package knothash_test

import (
	"fmt"
	"github.com/p7r0x7/knothash"
)

func ExampleDenseHash() {
	digest, err := knothash.DenseHash(knothash.RingSize, "AoC 2017")
	if err != nil {
		panic(err)
	}
	fmt.Println(digest)
	// Output: 33efeb34ea91902bb2f59c9920caa6cd
}

func ExampleSparseHash() {
	product, err := knothash.SparseHash(5, knothash.ParseLengths("3,4,1,5"))
	if err != nil {
		panic(err)
	}
	fmt.Println(product)
	// Output: 12
}

func ExampleSum() {
	fmt.Printf("%x\n", knothash.Sum([]byte("1,2,3")))
	// Output: 3efbe78a8d82f29979031a4aa0b16a9d
}
