package main

import (
	"fmt"
	"os"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/imaging"
	"storefront/internal/util"

	"github.com/pkg/errors"
)

func runInspect(path string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "failed to read file")
	}

	codec := imaging.NewCodec(cfg)
	preview, err := codec.Decode(data)
	if err != nil {
		return err
	}

	fmt.Printf("File:    %s (%s)\n", path, util.FormatBytes(int64(len(data))))
	fmt.Printf("SHA256:  %s\n", util.Checksum(data))
	fmt.Printf("Format:  %s (%s)\n", preview.Format, preview.ContentType)
	fmt.Printf("Size:    %s\n", util.FormatDimensions(preview.Width, preview.Height))

	crop := entity.NewCropState(preview.Width, preview.Height, entity.CropRegion{}, entity.MinZoom)
	encoded, err := codec.Encode(preview.Image, crop.Region)
	if err != nil {
		return err
	}

	fmt.Printf("Output:  %s %s at quality %d (%s)\n",
		util.FormatDimensions(encoded.Width, encoded.Height), encoded.ContentType, encoded.Quality,
		util.FormatBytes(int64(len(encoded.Data))))

	return nil
}
