// Package pipeline feeds files to the chunker.
//
// Run walks one or more roots, skipping hidden directories, vendor trees,
// oversized files and anything mimetype does not detect as text. Each
// remaining file is chunked on a bounded worker pool, with its content type
// taken from the file extension. Every chunk is stamped with document_id (a
// UUIDv5 of path and content), filename, source_path and total_chunks.
//
//	p := pipeline.New(c, pipeline.Config{Workers: 4}, logger)
//	res, err := p.Run(ctx, "./docs", "./internal")
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d chunks from %d files\n", res.Stats.ChunksCreated, res.Stats.FilesProcessed)
package pipeline
