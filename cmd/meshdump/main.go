// meshdump is a CLI utility for inspecting Wavefront OBJ and MTL files.
package main

import (
	"fmt"
	"os"

	"github.com/Faultbox/quickmesh/internal/config"
	"github.com/Faultbox/quickmesh/internal/logger"
	"github.com/Faultbox/quickmesh/pkg/wavefront"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]

	switch command {
	case "info":
		cmdInfo(cfg, args)
	case "materials", "mtl":
		cmdMaterials(args)
	case "dump":
		cmdDump(cfg, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshdump - Wavefront OBJ/MTL inspection utility

Usage:
  meshdump [flags] <command> [args]

Commands:
  info <model.obj>        Show per-mesh summary (material, vertices, triangles)
  materials <lib.mtl>     List materials from an MTL library
  dump <model.obj>        Print vertex and index data

Flags:
  -config path            Config file path
  -debug                  Enable debug logging
  -log-file path          Also write logs to a file
  -limit n                Max vertices/triangles printed per mesh (0 = all)

Examples:
  meshdump info teapot.obj
  meshdump materials teapot.mtl
  meshdump -limit 0 dump teapot.obj`)
}

func cmdInfo(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshdump info <model.obj>")
		os.Exit(1)
	}

	logger.Sugar.Debugw("loading OBJ", "path", args[0])
	meshes, err := wavefront.ParseOBJFile(args[0])
	if err != nil {
		logger.Sugar.Errorw("load failed", "path", args[0], "error", err)
		os.Exit(1)
	}

	fmt.Printf("File:      %s\n", args[0])
	fmt.Printf("Meshes:    %d\n", len(meshes))
	fmt.Printf("Vertices:  %d\n", wavefront.TotalVertexCount(meshes))
	fmt.Printf("Triangles: %d\n", wavefront.TotalTriangleCount(meshes))
	fmt.Println()

	for i := range meshes {
		m := &meshes[i]
		name := m.Material
		if name == "" {
			name = "(none)"
		}
		fmt.Printf("mesh %d: material=%s attribs=%s stride=%d vertices=%d triangles=%d\n",
			i, name, m.Attributes, m.Stride, m.NumVertices(), m.NumTriangles())
		if cfg.Dump.ShowBounds {
			min, max := m.Bounds()
			fmt.Printf("  bounds: (%g, %g, %g) .. (%g, %g, %g)\n",
				min.X, min.Y, min.Z, max.X, max.Y, max.Z)
		}
	}
}

func cmdMaterials(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshdump materials <lib.mtl>")
		os.Exit(1)
	}

	logger.Sugar.Debugw("loading MTL", "path", args[0])
	materials, err := wavefront.ParseMTLFile(args[0])
	if err != nil {
		logger.Sugar.Errorw("load failed", "path", args[0], "error", err)
		os.Exit(1)
	}

	fmt.Printf("File:      %s\n", args[0])
	fmt.Printf("Materials: %d\n\n", len(materials))

	for i := range materials {
		m := &materials[i]
		fmt.Printf("%s\n", m)
		fmt.Printf("  ambient=%v specular=%v Ns=%g Ni=%g\n", m.Ambient, m.Specular, m.SpecularExp, m.RefractionIndex)
		printMap("map_Ka", m.AmbientMap)
		printMap("map_Kd", m.DiffuseMap)
		printMap("map_Ks", m.SpecularMap)
		printMap("map_Bump", m.NormalMap)
	}
}

func printMap(label string, path *string) {
	if path != nil {
		fmt.Printf("  %-8s %s\n", label, *path)
	}
}

func cmdDump(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshdump dump <model.obj>")
		os.Exit(1)
	}

	meshes, err := wavefront.ParseOBJFile(args[0])
	if err != nil {
		logger.Sugar.Errorw("load failed", "path", args[0], "error", err)
		os.Exit(1)
	}

	limit := cfg.Dump.Limit
	for i := range meshes {
		m := &meshes[i]
		fmt.Printf("mesh %d: material=%q attribs=%s\n", i, m.Material, m.Attributes)

		n := m.NumVertices()
		if limit > 0 && n > limit {
			n = limit
		}
		for v := 0; v < n; v++ {
			fmt.Printf("  v[%d]:", v)
			if m.PosOffset != wavefront.OffsetUnused {
				p := m.Position(v)
				fmt.Printf(" pos=(%g, %g, %g)", p.X, p.Y, p.Z)
			}
			if m.NormalOffset != wavefront.OffsetUnused {
				nrm := m.Normal(v)
				fmt.Printf(" normal=(%g, %g, %g)", nrm.X, nrm.Y, nrm.Z)
			}
			if m.TexCoordOffset != wavefront.OffsetUnused {
				t := m.TexCoord(v)
				fmt.Printf(" uv=(%g, %g)", t.X, t.Y)
			}
			fmt.Println()
		}
		if n < m.NumVertices() {
			fmt.Printf("  ... %d more vertices\n", m.NumVertices()-n)
		}

		tris := m.NumTriangles()
		if limit > 0 && tris > limit {
			tris = limit
		}
		for t := 0; t < tris; t++ {
			fmt.Printf("  tri[%d]: %d %d %d\n", t, m.Indices[t*3], m.Indices[t*3+1], m.Indices[t*3+2])
		}
		if tris < m.NumTriangles() {
			fmt.Printf("  ... %d more triangles\n", m.NumTriangles()-tris)
		}
	}
}
