package galaxy_test

import (
	"fmt"

	"github.com/matzehuels/starmap/pkg/galaxy"
	"github.com/matzehuels/starmap/pkg/rng"
)

func ExampleGenerate() {
	g, err := galaxy.Generate(galaxy.DefaultConfig(), rng.New(42))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("connected:", g.Connected())
	// Output: connected: true
}
