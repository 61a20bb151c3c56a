// Package demo is the catalog of collection-processing demonstrations.
//
// Each Case is one self-contained demonstration: it builds its own pipeline
// over the read-only Dataset and returns a Result made of titled sections.
// Cases never print; rendering is the job of the console package.
//
//	reg := demo.Catalog()
//	c, err := reg.Get("average-car-price")
//	res, err := c.Run(ctx, dataset)
package demo
