package driver

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"whittle"
	"whittle/internal/cache"
	"whittle/internal/pipeline"
	"whittle/internal/source"
	"whittle/internal/version"
)

// MinifyFile runs the whole pipeline for one file. Cache hits skip the
// engine entirely; the write stage still runs so stale outputs get
// refreshed.
func MinifyFile(cfg Config, path string) FileResult {
	res := FileResult{Path: path}
	sink := cfg.sink()
	sink.OnEvent(pipeline.Event{File: path, Stage: pipeline.StageParse, Status: pipeline.StatusWorking})

	file, err := source.Load(path)
	if err != nil {
		return fail(sink, res, pipeline.StageParse, fmt.Errorf("load %s: %w", path, err))
	}

	key, err := cacheKey(cfg, file.Content)
	if err != nil {
		return fail(sink, res, pipeline.StageParse, err)
	}

	if payload, ok := cfg.Cache.Get(key); ok {
		res.Code = payload.Code
		res.Map = payload.Map
		res.Cached = true
	} else {
		out, err := whittle.MinifyTimed(path, string(file.Content), cfg.Options, func(stage string, elapsed time.Duration) {
			res.Timings.Add(pipeline.Stage(stage), elapsed)
			sink.OnEvent(pipeline.Event{File: path, Stage: pipeline.Stage(stage), Status: pipeline.StatusDone, Elapsed: elapsed})
		})
		if err != nil {
			return fail(sink, res, pipeline.StageParse, err)
		}
		res.Code = out.Code
		if out.Map != nil {
			res.Map, err = json.Marshal(out.Map)
			if err != nil {
				return fail(sink, res, pipeline.StagePrint, fmt.Errorf("encode source map for %s: %w", path, err))
			}
		}
		// A failed store is only a cold cache next time.
		_ = cfg.Cache.Put(key, &cache.Payload{Code: res.Code, Map: res.Map})
	}

	if cfg.Write {
		start := time.Now()
		if err := writeOutputs(cfg, &res); err != nil {
			return fail(sink, res, pipeline.StageWrite, err)
		}
		elapsed := time.Since(start)
		res.Timings.Add(pipeline.StageWrite, elapsed)
		sink.OnEvent(pipeline.Event{File: path, Stage: pipeline.StageWrite, Status: pipeline.StatusDone, Elapsed: elapsed})
	}
	return res
}

func fail(sink pipeline.Sink, res FileResult, stage pipeline.Stage, err error) FileResult {
	res.Err = err
	sink.OnEvent(pipeline.Event{File: res.Path, Stage: stage, Status: pipeline.StatusError, Err: err})
	return res
}

// cacheKey fingerprints everything that affects the output: the source
// bytes, the full option set, and the tool version.
func cacheKey(cfg Config, content []byte) (cache.Key, error) {
	fingerprint, err := json.Marshal(cfg.Options)
	if err != nil {
		return cache.Key{}, fmt.Errorf("fingerprint options: %w", err)
	}
	return cache.KeyFor(content, fingerprint, version.Number), nil
}

func writeOutputs(cfg Config, res *FileResult) error {
	outPath := cfg.outPathFor(res.Path)
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	code := res.Code
	if res.Map != nil {
		mapPath := outPath + ".map"
		if err := os.WriteFile(mapPath, res.Map, 0o600); err != nil {
			return fmt.Errorf("write source map: %w", err)
		}
		res.MapPath = mapPath
		code += "\n//# sourceMappingURL=" + filepath.Base(mapPath) + "\n"
	}

	if err := os.WriteFile(outPath, []byte(code), 0o600); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	res.OutPath = outPath
	return nil
}
