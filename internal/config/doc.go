// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

/*
Package config loads service configuration with Koanf v2.

Sources are layered, later layers overriding earlier ones:

  - built-in defaults (port 8000, upstream http://localhost:5100, limits 25/20/50/100)
  - an optional YAML file (CONFIG_PATH, ./config.yaml, /etc/musictrends/config.yaml)
  - an optional .env file (DOTENV_PATH or ./.env)
  - environment variables

Example config.yaml:

	server:
	  port: 8000
	connector:
	  base_url: http://localhost:5100
	  trending_seeds:
	    - query: bollywood hits
	      genre: bollywood
	      language: hindi
	security:
	  cors_origins:
	    - http://localhost:3000

The same seeds can be given as TRENDING_SEEDS="bollywood hits|bollywood|hindi;trending now|trending".
*/
package config
