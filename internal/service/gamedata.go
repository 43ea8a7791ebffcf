package service

import "strings"

// agentNames maps character IDs from match payloads to display names. A few
// agents ship under more than one ID across game versions.
var agentNames = map[string]string{
	"e370fa57-4757-3604-3648-499e1f642d3f": "Gekko",
	"dade69b4-4f5a-8528-247b-219e5a1facd6": "Fade",
	"5f8d3a7f-467b-97f3-062c-13acf203c006": "Breach",
	"cc8b64c8-4b25-4ff9-6e7f-37b4da43d235": "Deadlock",
	"f94c3b30-42be-e959-889c-5aa313dba261": "Raze",
	"22697a3d-45bf-8dd7-4fec-84a9e28c69d7": "Chamber",
	"601dbbe7-43ce-be57-2a40-4abd24953621": "KAY/O",
	"6f2a04ca-43e0-be17-7f36-b3908627744d": "Skye",
	"117ed9e3-49f3-6512-3ccf-0cada7e3823b": "Cypher",
	"ded3520f-4264-bfed-162d-b080e2abccf9": "Sova",
	"320b2a48-4d9b-a075-30f1-1f93a9b638fa": "Sova",
	"1e58de9c-4950-5125-93e9-a0aee9f98746": "Killjoy",
	"707eab51-4836-f488-046a-cda6bf494859": "Viper",
	"eb93336a-449b-9c1b-0a54-a891f7921d69": "Phoenix",
	"41fb69c1-4189-7b37-f117-bcaf1e96f1bf": "Astra",
	"9f0d8ba9-4140-b941-57d3-a7ad57c6b417": "Brimstone",
	"7f94d92c-4234-0a36-9646-3a87eb8b5c89": "Yoru",
	"569fdd95-4d10-43ab-ca70-79becc718b46": "Sage",
	"a3bfb853-43b2-7238-a4f1-ad90e9e46bcc": "Reyna",
	"8e253930-4c05-31dd-1b6c-968525494517": "Omen",
	"add6443a-41bd-e414-f6ad-e58d267f4e95": "Jett",
	"bb2a4828-46eb-8cd1-e765-15848195d751": "Neon",
	"0e38b510-41a8-5780-5e8f-568b2a4f2d6c": "Iso",
	"efba5359-4016-a1e5-7626-b1ae76895940": "Harbor",
	"95b78ed7-4637-86d9-7e41-71ba8c293152": "Harbor",
	"1dbf2edd-4729-0984-3115-daa5eed44993": "Clove",
	"df1cb487-1d77-a042-2203-d4a89ef2da10": "Waylay",
	"df1cb487-4902-002e-5c17-d28e83e78588": "Waylay",
}

// mapNames maps the internal map codes used in matchInfo.mapId paths to
// display names.
var mapNames = map[string]string{
	"Ascent":     "Ascent",
	"Duality":    "Bind",
	"Bonsai":     "Split",
	"Triad":      "Haven",
	"Port":       "Icebox",
	"Foxtrot":    "Breeze",
	"Canyon":     "Fracture",
	"Pitt":       "Pearl",
	"Jam":        "Lotus",
	"Juliett":    "Sunset",
	"Infinity":   "Abyss",
	"Corro":      "Corrode",
	"Rook":       "Corrode",
	"HURM_Alley": "District",
	"HURM_Bowl":  "Kasbah",
	"HURM_Yard":  "Drift",
	"HURM_Helix": "Piazza",
}

// agentNameFor resolves a character ID to a display name, empty when unknown.
func agentNameFor(characterID string) string {
	return agentNames[characterID]
}

// mapNameFor resolves a mapId like /Game/Maps/Triad/Triad to a display name.
// Unknown codes fall through as-is so new maps still show something.
func mapNameFor(mapID string) string {
	code := mapID
	if idx := strings.LastIndex(mapID, "/"); idx >= 0 {
		code = mapID[idx+1:]
	}
	if name, ok := mapNames[code]; ok {
		return name
	}
	return code
}
