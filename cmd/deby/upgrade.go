package main

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/inconshreveable/go-update"
)

type GithubReleaseResponse struct {
	Url    string `json:"url"`
	Assets []struct {
		Name               string `json:"name"`
		BrowserDownloadUrl string `json:"browser_download_url"`
	}
}

// runUpgrade replaces the running binary with the latest released one.
func runUpgrade() (err error) {
	var (
		downloadURL     string
		githubResponse  GithubReleaseResponse
		githubAssetName = "deby"
		url             = "https://api.github.com/repos/debyproject/deby-go/releases/latest"
	)

	response, err := http.Get(url)
	if err != nil {
		log.Printf("error: %v\n", err)
		log.Println("Failed to fetch the latest release.")

		return
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		log.Printf("error: %v\n", err)

		return
	}

	if err := json.Unmarshal(body, &githubResponse); err != nil {
		log.Printf("error: %v\n", err)

		return err
	}

	for _, asset := range githubResponse.Assets {
		if asset.Name == githubAssetName {
			downloadURL = strings.TrimSuffix(asset.BrowserDownloadUrl, "\n")
			break
		}
	}
	if downloadURL == "" {
		return errors.New("the latest release does not ship a deby binary")
	}

	log.Println(downloadURL)
	log.Println("Self-updating...")

	resp, err := http.Get(downloadURL)
	if err != nil {
		log.Printf("error: %v\n", err)

		return err
	}
	defer resp.Body.Close()

	err = update.Apply(resp.Body, update.Options{})
	if err != nil {
		log.Printf("error: %v\n", err)

		return err
	}

	log.Println("Updated. Run deby --version to confirm the new version.")

	return
}
