package view

// User-facing labels and messages.
const (
	NotAvailable         = "n/a"
	StatNotAvailable     = "N/A"
	UnknownArtist        = "Artiste inconnu"
	SpotifyArtistLabel   = "Artiste Spotify"
	OnSpotifyTag         = "Sur Spotify"
	NoGenreHero          = "Aucun genre indiqué"
	NoGenreStat          = "Aucun genre"
	NoGenreAvailable     = "Aucun genre disponible pour cet artiste."
	OpenOnSpotify        = "Ouvrir sur Spotify"
	BackToArtists        = "Retour aux artistes"
	ViewOnSpotify        = "Voir sur Spotify"
	ViewDetails          = "Voir les détails"
	NoArtistFound        = "Aucun artiste trouvé."
	NoSearchResult       = "Aucun artiste trouvé pour cette recherche."
	SpotifyNeedsTerm     = "Ajoutez un terme de recherche pour interroger Spotify."
	SpotifyUnavailable   = "La recherche Spotify est indisponible. Vérifiez les identifiants."
	ArtistsLoadFailed    = "Échec du chargement des artistes. Veuillez réessayer plus tard."
	ArtistsSearchFailed  = "Échec du chargement des artistes. Veuillez réessayer."
	EventsLoadFailed     = "Échec du chargement des événements depuis le serveur."
	LocationsLoadFailed  = "Échec du chargement des lieux depuis le serveur."
	RelationsLoadFailed  = "Échec du chargement des relations depuis le serveur."
	NoEventMatch         = "Aucun concert ne correspond à ces filtres."
	NoLocationMatch      = "Aucun lieu ne correspond à ces filtres."
	NoRelationMatch      = "Aucune relation ne correspond à ces filtres."
	NoConcert            = "Aucun concert prévu."
	BadgeGroupie         = "Groupie Tracker"
	BadgeSpotify         = "Spotify"
	SpotifyArtistBaseURL = "https://open.spotify.com/artist/"
)
