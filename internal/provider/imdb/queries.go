package imdb

// Operation names double as memo keys.
const (
	opTitleMain     = "TitleMain"
	opTitleKeywords = "TitleKeywords"
	opTitleTrailers = "TitleTrailers"
	opName          = "Name"
	opCompany       = "Company"
	opKeywordTitles = "KeywordTitles"
	opNews          = "News"
	opVideo         = "Video"
)

const titleMainQuery = `
	query TitleMain($id: ID!) {
		title(id: $id) {
			id
			titleText { text }
			originalTitleText { text }
			titleType { id text }
			releaseYear { year endYear }
			runtime { seconds }
			ratingsSummary { aggregateRating voteCount }
			plot { plotText { plainText } }
			genres { genres { text } }
			spokenLanguages { spokenLanguages { id text } }
			countriesOfOrigin { countries { id text } }
			technicalSpecs {
				colorations { items { text } }
				soundMixes { items { text } }
				aspectRatios { items { aspectRatio } }
			}
			primaryImage { url width height }
		}
	}
`

const titleKeywordsQuery = `
	query TitleKeywords($id: ID!) {
		title(id: $id) {
			keywords(first: 50) { edges { node { text } } }
		}
	}
`

const titleTrailersQuery = `
	query TitleTrailers($id: ID!) {
		title(id: $id) {
			primaryVideos(first: 10) {
				edges {
					node {
						id
						name { value }
						contentType { displayName { value } }
						runtime { value }
						thumbnail { url width height }
						playbackURLs { url }
					}
				}
			}
		}
	}
`

const nameQuery = `
	query Name($id: ID!) {
		name(id: $id) {
			id
			nameText { text }
			primaryImage { url width height }
			birthDate { dateComponents { day month year } }
			birthLocation { text }
			deathDate { dateComponents { day month year } }
			deathLocation { text }
			deathCause { text }
			birthName { text }
			nickNames { text }
			akas(first: 50) { edges { node { text } } }
			height { displayableProperty { value { plainText } } }
			bios(first: 2) { edges { node { text { plainText } author { plainText } } } }
			primaryProfessions { category { text } }
			meterRanking { currentRank rankChange { changeDirection difference } }
			knownFor(first: 4) {
				edges {
					node {
						title {
							id
							titleText { text }
							titleType { text }
							releaseYear { year }
							primaryImage { url width height }
						}
						summary { principalCategory { text } }
					}
				}
			}
		}
	}
`

const companyQuery = `
	query Company($id: ID!) {
		company(id: $id) {
			id
			companyText { text }
			country { text }
			companyTypes { text }
			meterRanking { currentRank }
			affiliations(first: 20) {
				edges { node { company { id companyText { text } } text } }
			}
			keyStaff(first: 20) {
				edges { node { name { id nameText { text } } employments { employmentTitle { text } } } }
			}
			knownForTitles(first: 20) {
				edges {
					node {
						title { id titleText { text } }
						jobs { category { text } }
						countries { text }
						yearRange { year endYear }
					}
				}
			}
		}
	}
`

const keywordTitlesQuery = `
	query KeywordTitles($keyword: String!) {
		advancedTitleSearch(first: 50, constraints: { keywordConstraint: { allKeywords: [$keyword] } }) {
			edges {
				node {
					title {
						id
						titleText { text }
						titleType { text }
						releaseYear { year }
						ratingsSummary { aggregateRating }
						primaryImage { url width height }
					}
				}
			}
		}
	}
`

const newsQuery = `
	query News($category: NewsCategory!) {
		news(first: 20, category: $category) {
			edges {
				node {
					id
					articleTitle { plainText }
					date
					externalUrl
					source { homepage { label } }
					byline
					image { url width height }
					text { plainText }
				}
			}
		}
	}
`

const videoQuery = `
	query Video($id: ID!) {
		video(id: $id) {
			id
			name { value }
			description { value }
			runtime { value }
			videoDimensions { aspectRatio }
			createdDate
			thumbnail { url width height }
			playbackURLs { displayName { value } mimeType url }
			primaryTitle {
				id
				titleText { text }
				releaseDate { day month year }
				primaryImage { url width height }
			}
		}
	}
`
