package main

import (
	"log"
	"os"

	"github.com/zzl/go-cppapi-gen/apidesc"
	"github.com/zzl/go-cppapi-gen/cmodel"
	"github.com/zzl/go-cppapi-gen/codegen"
	"github.com/zzl/go-cppapi-gen/config"
	"github.com/zzl/go-cppapi-gen/utils"
)

func main() {

	configPath := "cppapi-gen.toml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Panic(err)
	}

	os.MkdirAll(cfg.Output.Dir, os.ModePerm)
	utils.CleanDir(cfg.Output.Dir)

	loader := apidesc.NewLoader()
	for _, file := range cfg.Input.Files {
		if err := loader.LoadFile(file); err != nil {
			log.Panic(err)
		}
	}
	functions, err := loader.Resolve()
	if err != nil {
		log.Panic(err)
	}

	filter := cfg.Filter.ToModelFilter()
	builder := cmodel.NewModelBuilder(functions, filter)
	model, err := builder.Build()
	if err != nil {
		log.Panic(err)
	}
	if len(model.Skipped) > 0 {
		log.Printf("%d declarations skipped", len(model.Skipped))
	}

	generator := codegen.NewGenerator(model)
	generator.OutputDir = cfg.Output.Dir
	generator.HeaderName = cfg.Output.Header
	generator.ApiName = cfg.Output.ApiName
	generator.Gen()

	println("Done.")
}
