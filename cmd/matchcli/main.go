// Command matchcli runs a batch map-match from the command line: a network
// JSON file, a tracks JSON file, and the matcher's tunable parameters in,
// one JSON array of results out on stdout.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"mapmatch/pkg/api"
	"mapmatch/pkg/boundary"
	"mapmatch/pkg/matching"
	"mapmatch/pkg/network"
)

func main() {
	networkPath := flag.String("network", "", "path to network JSON file ({nodes, edges})")
	tracksPath := flag.String("tracks", "", "path to tracks JSON file (array of {id?, points})")
	gpsSigma := flag.Float64("gps-sigma", matching.DefaultParams().GPSSigma, "GPS error standard deviation, meters")
	beta := flag.Float64("beta", matching.DefaultParams().Beta, "transition deviation rate")
	searchRadius := flag.Float64("search-radius", matching.DefaultParams().SearchRadius, "candidate search radius, meters")
	threads := flag.Int("threads", 0, "worker count, 0 = one per hardware thread")
	flag.Parse()

	if *networkPath == "" || *tracksPath == "" {
		log.Fatal("both --network and --tracks are required")
	}

	networkData, err := readJSONDict(*networkPath)
	if err != nil {
		log.Fatalf("reading network file: %v", err)
	}

	var trackFiles []api.TrackJSON
	if err := readJSONFile(*tracksPath, &trackFiles); err != nil {
		log.Fatalf("reading tracks file: %v", err)
	}

	net, err := boundary.BuildRoadNetwork(networkData, network.BuildOptions{})
	if err != nil {
		log.Fatalf("building network: %v", err)
	}

	tracks := make([]matching.Track, len(trackFiles))
	for i, t := range trackFiles {
		id := t.ID
		if id == "" {
			id = boundary.SynthesizeTrackID(i)
		}
		tracks[i] = boundary.BuildTrack(id, t.Points)
	}

	params := matching.Params{
		GPSSigma:     *gpsSigma,
		Beta:         *beta,
		SearchRadius: *searchRadius,
		NumThreads:   *threads,
	}

	results, err := matching.MatchBatch(context.Background(), tracks, net, params)
	if err != nil {
		log.Fatalf("batch match: %v", err)
	}

	output := make([]api.MatchResultJSON, len(results))
	for i, r := range results {
		out, found := boundary.MatchResultToOutput(r.TrackID, r.Result)
		if !found {
			output[i] = api.MatchResultJSON{TrackID: r.TrackID, Found: false}
			continue
		}
		output[i] = api.MatchResultJSON{
			TrackID:        out.TrackID,
			Found:          true,
			MatchedPoints:  out.MatchedPoints,
			EdgeIDs:        out.EdgeIDs,
			LogProbability: out.LogProbability,
			PathIndices:    out.PathIndices,
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		log.Fatalf("encoding output: %v", err)
	}
}

func readJSONFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(v)
}

func readJSONDict(path string) (map[string]any, error) {
	var v map[string]any
	if err := readJSONFile(path, &v); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return v, nil
}
