package main

// sampleSearchResponse is a trimmed catalog search response: one granule with
// a bounding rectangle, one with a boundary polygon, one with an orbit-only
// spatial extent (no extractable geometry).
const sampleSearchResponse = `{
  "hits": 3,
  "took": 21,
  "items": [
    {
      "size": 112.4,
      "meta": {
        "concept-type": "granule",
        "concept-id": "G2099379999-LPCLOUD",
        "native-id": "HLS.L30.T11SQA.2023150T181232.v2.0",
        "provider-id": "LPCLOUD"
      },
      "umm": {
        "GranuleUR": "HLS.L30.T11SQA.2023150T181232.v2.0",
        "TemporalExtent": {
          "RangeDateTime": {
            "BeginningDateTime": "2023-05-30T18:12:32.839Z",
            "EndingDateTime": "2023-05-30T18:12:56.728Z"
          }
        },
        "SpatialExtent": {
          "HorizontalSpatialDomain": {
            "Geometry": {
              "BoundingRectangles": [
                {
                  "WestBoundingCoordinate": -118.12,
                  "SouthBoundingCoordinate": 35.23,
                  "EastBoundingCoordinate": -116.85,
                  "NorthBoundingCoordinate": 36.24
                }
              ]
            }
          }
        },
        "RelatedUrls": [
          {"Type": "GET DATA", "URL": "https://data.lpdaac.earthdatacloud.nasa.gov/HLS.L30.T11SQA.B04.tif"},
          {"Type": "GET DATA VIA DIRECT ACCESS", "URL": "s3://lp-prod-protected/HLSL30.020/HLS.L30.T11SQA.B04.tif"},
          {"Type": "VIEW RELATED INFORMATION", "URL": "https://lpdaac.usgs.gov/documents/hls-user-guide.pdf"}
        ]
      }
    },
    {
      "size": 1854.9,
      "meta": {
        "concept-type": "granule",
        "concept-id": "G2231840342-LPCLOUD",
        "native-id": "EMIT_L2A_RFL_001_20230530T181503",
        "provider-id": "LPCLOUD"
      },
      "umm": {
        "GranuleUR": "EMIT_L2A_RFL_001_20230530T181503",
        "TemporalExtent": {
          "RangeDateTime": {
            "BeginningDateTime": "2023-05-30T18:15:03.000Z",
            "EndingDateTime": "2023-05-30T18:15:15.000Z"
          }
        },
        "SpatialExtent": {
          "HorizontalSpatialDomain": {
            "Geometry": {
              "GPolygons": [
                {
                  "Boundary": {
                    "Points": [
                      {"Longitude": -118.02, "Latitude": 35.45},
                      {"Longitude": -117.35, "Latitude": 35.53},
                      {"Longitude": -117.27, "Latitude": 34.91},
                      {"Longitude": -117.94, "Latitude": 34.83},
                      {"Longitude": -118.02, "Latitude": 35.45}
                    ]
                  }
                }
              ]
            }
          }
        },
        "RelatedUrls": [
          {"Type": "GET DATA", "URL": "https://data.lpdaac.earthdatacloud.nasa.gov/EMIT_L2A_RFL_001.nc"},
          {"Type": "GET RELATED VISUALIZATION", "URL": "https://data.lpdaac.earthdatacloud.nasa.gov/EMIT_L2A_RFL_001.png"},
          {"Type": "EXTENDED METADATA", "URL": "https://data.lpdaac.earthdatacloud.nasa.gov/EMIT_L2A_RFL_001.cmr.json"}
        ]
      }
    },
    {
      "size": 402.1,
      "meta": {
        "concept-type": "granule",
        "concept-id": "G1966917489-POCLOUD",
        "native-id": "S6A_P4_2__LR_STD__ST_089_132",
        "provider-id": "POCLOUD"
      },
      "umm": {
        "GranuleUR": "S6A_P4_2__LR_STD__ST_089_132",
        "TemporalExtent": {
          "RangeDateTime": {
            "BeginningDateTime": "2023-05-29T11:04:17.000Z",
            "EndingDateTime": "2023-05-29T12:57:07.000Z"
          }
        },
        "SpatialExtent": {
          "HorizontalSpatialDomain": {
            "Orbit": {
              "AscendingCrossing": 142.7,
              "StartLatitude": -66.15,
              "StartDirection": "A",
              "EndLatitude": 66.15,
              "EndDirection": "D"
            }
          }
        },
        "RelatedUrls": [
          {"Type": "GET DATA", "URL": "https://archive.podaac.earthdata.nasa.gov/S6A_P4_2__LR_STD__ST_089_132.nc"}
        ]
      }
    }
  ]
}`
