// Command gen regenerates the typed gorm/gen query helpers for every persisted model.
package main

import (
	"enginex/internal/infra/persistence/model"

	"gorm.io/gen"
)

const queryDir = "./internal/infra/persistence/postgres/query"

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath:           queryDir,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldWithIndexTag: true,
	})

	g.ApplyBasic(model.All()...)
	g.Execute()
}
