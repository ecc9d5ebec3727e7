package catalog

import "StockScope/internal/domain/models"

// OverviewCatalog resolves company overview records by symbol. The specific
// list is consulted before the popular list, then the fallback record.
type OverviewCatalog struct {
	specific map[string]models.StockOverview
	popular  map[string]models.StockOverview
	fallback models.StockOverview
}

// Resolve returns the overview for symbol, falling back to the demo record
// for unknown symbols.
func (c *OverviewCatalog) Resolve(symbol string) models.StockOverview {
	if o, ok := c.specific[symbol]; ok {
		return o
	}
	if o, ok := c.popular[symbol]; ok {
		return o
	}
	return c.fallback
}

// EmptyOverview is the all-empty placeholder returned for news-only requests.
func EmptyOverview() models.StockOverview {
	return models.StockOverview{}
}

// NewOverviewCatalog builds the static overview catalog.
func NewOverviewCatalog() *OverviewCatalog {
	return &OverviewCatalog{
		specific: specificOverviews(),
		popular:  popularOverviews(),
		fallback: models.StockOverview{
			Symbol:               "DEMO",
			AssetType:            "Common Stock",
			Name:                 "Demo Company",
			Description:          "This is a mock company generated for demonstration purposes. The company operates in various sectors and provides a wide range of products and services to its customers worldwide. This is not a real company, and all the information displayed is fictional.",
			Exchange:             "NASDAQ",
			Currency:             "USD",
			Country:              "USA",
			Sector:               "Technology",
			Industry:             "Software",
			Address:              "123 Mock Street, Demo City, NY, United States, 10001",
			OfficialSite:         "https://www.example.com",
			MarketCapitalization: "500000000000",
			PERatio:              "25.40",
			DividendYield:        "0.0185",
			EPS:                  "7.35",
			Beta:                 "1.125",
			Week52High:           "185.00",
			Week52Low:            "120.00",
		},
	}
}

func popularOverviews() map[string]models.StockOverview {
	return map[string]models.StockOverview{
		"AAPL": {
			Symbol:               "AAPL",
			AssetType:            "Common Stock",
			Name:                 "Apple Inc",
			Description:          "Apple Inc. designs, manufactures, and markets smartphones, personal computers, tablets, wearables, and accessories worldwide. It also sells various related services. The company offers iPhone, a line of smartphones; Mac, a line of personal computers; iPad, a line of multi-purpose tablets; and wearables, home, and accessories comprising AirPods, Apple TV, Apple Watch, Beats products, HomePod, iPod touch, and other Apple-branded and third-party accessories.",
			Exchange:             "NASDAQ",
			Currency:             "USD",
			Country:              "USA",
			Sector:               "Technology",
			Industry:             "Consumer Electronics",
			Address:              "One Apple Park Way, Cupertino, CA, United States, 95014",
			OfficialSite:         "https://www.apple.com",
			MarketCapitalization: "2872939880000",
			PERatio:              "32.57",
			DividendYield:        "0.0045",
			EPS:                  "6.43",
			Beta:                 "1.265",
			Week52High:           "199.62",
			Week52Low:            "142.95",
		},
		"MSFT": {
			Symbol:               "MSFT",
			AssetType:            "Common Stock",
			Name:                 "Microsoft Corporation",
			Description:          "Microsoft Corporation develops, licenses, and supports software, services, devices, and solutions worldwide. Its Productivity and Business Processes segment offers Office, Exchange, SharePoint, Microsoft Teams, Office 365 Security and Compliance, and Skype for Business, as well as related Client Access Licenses (CAL); Skype, Outlook.com, OneDrive, and LinkedIn; and Dynamics 365, a set of cloud-based and on-premises business solutions for small and medium businesses, large organizations, and divisions of enterprises.",
			Exchange:             "NASDAQ",
			Currency:             "USD",
			Country:              "USA",
			Sector:               "Technology",
			Industry:             "Software—Infrastructure",
			Address:              "One Microsoft Way, Redmond, WA, United States, 98052-6399",
			OfficialSite:         "https://www.microsoft.com",
			MarketCapitalization: "2875431250000",
			PERatio:              "38.95",
			DividendYield:        "0.0071",
			EPS:                  "10.31",
			Beta:                 "0.902",
			Week52High:           "432.56",
			Week52Low:            "309.11",
		},
		"AMZN": {
			Symbol:               "AMZN",
			AssetType:            "Common Stock",
			Name:                 "Amazon.com Inc",
			Description:          "Amazon.com, Inc. engages in the retail sale of consumer products and subscriptions through online and physical stores in North America and internationally. It operates through three segments: North America, International, and Amazon Web Services (AWS). The company's products offered through its stores include merchandise and content purchased for resale; and products offered by third-party sellers.",
			Exchange:             "NASDAQ",
			Currency:             "USD",
			Country:              "USA",
			Sector:               "Consumer Cyclical",
			Industry:             "Internet Retail",
			Address:              "410 Terry Avenue North, Seattle, WA, United States, 98109-5210",
			OfficialSite:         "https://www.amazon.com",
			MarketCapitalization: "1891936960000",
			PERatio:              "58.77",
			DividendYield:        "0",
			EPS:                  "3.17",
			Beta:                 "1.154",
			Week52High:           "189.77",
			Week52Low:            "118.51",
		},
		"TSLA": {
			Symbol:               "TSLA",
			AssetType:            "Common Stock",
			Name:                 "Tesla Inc",
			Description:          "Tesla, Inc. designs, develops, manufactures, leases, and sells electric vehicles, and energy generation and storage systems in the United States, China, and internationally. The company operates in two segments, Automotive, and Energy Generation and Storage. The Automotive segment offers electric vehicles, as well as sells automotive regulatory credits.",
			Exchange:             "NASDAQ",
			Currency:             "USD",
			Country:              "USA",
			Sector:               "Consumer Cyclical",
			Industry:             "Auto Manufacturers",
			Address:              "1 Tesla Road, Austin, TX, United States, 78725",
			OfficialSite:         "https://www.tesla.com",
			MarketCapitalization: "703978200000",
			PERatio:              "59.85",
			DividendYield:        "0",
			EPS:                  "3.54",
			Beta:                 "2.273",
			Week52High:           "245.79",
			Week52Low:            "152.37",
		},
	}
}

func specificOverviews() map[string]models.StockOverview {
	return map[string]models.StockOverview{
		"MLGO": {
			Symbol:               "MLGO",
			AssetType:            "Common Stock",
			Name:                 "MicroAlgo Inc",
			Description:          "MicroAlgo Inc. develops and provides central processing algorithm solutions to customers in internet advertisement, gaming, and intelligent chip industries in the People's Republic of China. The company operates through two segments, Central Processing Algorithm Services, and Intelligent Chips and Services. It offers services to process massive data sets, and provides customers with customized computing results.",
			Exchange:             "NASDAQ",
			Currency:             "USD",
			Country:              "China",
			Sector:               "Technology",
			Industry:             "Software—Application",
			Address:              "888 Dongping Street, Suite 808, Hefei, China, 230031",
			OfficialSite:         "https://www.microalgo.com",
			MarketCapitalization: "56378900",
			PERatio:              "42.75",
			DividendYield:        "0",
			EPS:                  "0.053",
			Beta:                 "1.432",
			Week52High:           "8.10",
			Week52Low:            "1.94",
		},
		"MBOT": {
			Symbol:               "MBOT",
			AssetType:            "Common Stock",
			Name:                 "Microbot Medical Inc",
			Description:          "Microbot Medical Inc., a pre-clinical medical device company, researches, designs, and develops micro-robotic medical technologies for the treatment of vascular and neurological diseases. Its product is the LIBERTY Robotic Surgical System, an endovascular micro-robotic surgical system, which is designed to navigate through blood vessels to treat various endovascular diseases, such as embolisms, aneurysms, and occlusions.",
			Exchange:             "NASDAQ",
			Currency:             "USD",
			Country:              "USA",
			Sector:               "Healthcare",
			Industry:             "Medical Devices",
			Address:              "25 Recreation Park Drive, Unit 108, Hingham, MA, United States, 02043",
			OfficialSite:         "https://www.microbotmedical.com",
			MarketCapitalization: "25740600",
			PERatio:              "0",
			DividendYield:        "0",
			EPS:                  "-3.21",
			Beta:                 "2.516",
			Week52High:           "2.85",
			Week52Low:            "1.42",
		},
		"MCHP": {
			Symbol:               "MCHP",
			AssetType:            "Common Stock",
			Name:                 "Microchip Technology Inc",
			Description:          "Microchip Technology Incorporated develops, manufactures, and sells smart, connected, and secure embedded control solutions in the Americas, Europe, and Asia. The company offers general purpose 8-bit, 16-bit, and 32-bit microcontrollers; 32-bit embedded microprocessors markets; and specialized microcontrollers for automotive, industrial, computing, communications, lighting, power supplies, motor control, and other applications.",
			Exchange:             "NASDAQ",
			Currency:             "USD",
			Country:              "USA",
			Sector:               "Technology",
			Industry:             "Semiconductors",
			Address:              "2355 West Chandler Boulevard, Chandler, AZ, United States, 85224",
			OfficialSite:         "https://www.microchip.com",
			MarketCapitalization: "45812340000",
			PERatio:              "25.65",
			DividendYield:        "0.0195",
			EPS:                  "3.15",
			Beta:                 "1.58",
			Week52High:           "94.30",
			Week52Low:            "68.75",
		},
		"CY9D.FRK": {
			Symbol:               "CY9D.FRK",
			AssetType:            "Common Stock",
			Name:                 "Microbot Medical Inc",
			Description:          "Microbot Medical Inc., a pre-clinical medical device company, researches, designs, and develops micro-robotic medical technologies for the treatment of vascular and neurological diseases. Its product is the LIBERTY Robotic Surgical System, an endovascular micro-robotic surgical system, which is designed to navigate through blood vessels to treat various endovascular diseases, such as embolisms, aneurysms, and occlusions.",
			Exchange:             "Frankfurt",
			Currency:             "EUR",
			Country:              "USA",
			Sector:               "Healthcare",
			Industry:             "Medical Devices",
			Address:              "25 Recreation Park Drive, Unit 108, Hingham, MA, United States, 02043",
			OfficialSite:         "https://www.microbotmedical.com",
			MarketCapitalization: "23800000",
			PERatio:              "0",
			DividendYield:        "0",
			EPS:                  "-2.95",
			Beta:                 "2.45",
			Week52High:           "2.65",
			Week52Low:            "1.32",
		},
		"MCHPP": {
			Symbol:               "MCHPP",
			AssetType:            "Preferred Stock",
			Name:                 "Microchip Technology Inc",
			Description:          "Microchip Technology Incorporated develops, manufactures, and sells smart, connected, and secure embedded control solutions in the Americas, Europe, and Asia. The company offers general purpose 8-bit, 16-bit, and 32-bit microcontrollers; 32-bit embedded microprocessors markets; and specialized microcontrollers for automotive, industrial, computing, communications, lighting, power supplies, motor control, and other applications.",
			Exchange:             "NASDAQ",
			Currency:             "USD",
			Country:              "USA",
			Sector:               "Technology",
			Industry:             "Semiconductors",
			Address:              "2355 West Chandler Boulevard, Chandler, AZ, United States, 85224",
			OfficialSite:         "https://www.microchip.com",
			MarketCapitalization: "1756290000",
			PERatio:              "23.80",
			DividendYield:        "0.0525",
			EPS:                  "0",
			Beta:                 "1.52",
			Week52High:           "98.75",
			Week52Low:            "71.42",
		},
		"MBX.TRT": {
			Symbol:               "MBX.TRT",
			AssetType:            "Common Stock",
			Name:                 "Microbix Biosystems Inc.",
			Description:          "Microbix Biosystems Inc. develops and commercializes proprietary biological and technological solutions for human health and well-being in North America, Europe, and internationally. The company offers antigens, which is used in the production of diagnostic test kits or as components of vaccine production. It also provides viral transport medium that is used for the collection, transport, and storage of specimens for infectious disease tests.",
			Exchange:             "Toronto",
			Currency:             "CAD",
			Country:              "Canada",
			Sector:               "Healthcare",
			Industry:             "Biotechnology",
			Address:              "265 Watline Avenue, Mississauga, ON, Canada, L4Z 1P3",
			OfficialSite:         "https://www.microbix.com",
			MarketCapitalization: "56850000",
			PERatio:              "29.35",
			DividendYield:        "0",
			EPS:                  "0.017",
			Beta:                 "0.89",
			Week52High:           "0.53",
			Week52Low:            "0.31",
		},
		"MALG": {
			Symbol:               "MALG",
			AssetType:            "Common Stock",
			Name:                 "Microalliance Group Inc",
			Description:          "Microalliance Group Inc. is a technology company focused on developing innovative solutions for small and medium-sized businesses. The company provides cloud-based software platforms, IT consulting services, and digital transformation solutions to help businesses optimize their operations and enhance their digital presence.",
			Exchange:             "NASDAQ",
			Currency:             "USD",
			Country:              "USA",
			Sector:               "Technology",
			Industry:             "Software—Infrastructure",
			Address:              "1200 Tech Drive, Suite 300, San Jose, CA, United States, 95110",
			OfficialSite:         "https://www.microalliance.com",
			MarketCapitalization: "78420000",
			PERatio:              "32.40",
			DividendYield:        "0.0085",
			EPS:                  "0.85",
			Beta:                 "1.21",
			Week52High:           "24.75",
			Week52Low:            "15.30",
		},
		"MBXBF": {
			Symbol:               "MBXBF",
			AssetType:            "Common Stock",
			Name:                 "Microbix Biosystems Inc",
			Description:          "Microbix Biosystems Inc. develops and commercializes proprietary biological and technological solutions for human health and well-being in North America, Europe, and internationally. The company offers antigens, which is used in the production of diagnostic test kits or as components of vaccine production. It also provides viral transport medium that is used for the collection, transport, and storage of specimens for infectious disease tests.",
			Exchange:             "OTC",
			Currency:             "USD",
			Country:              "Canada",
			Sector:               "Healthcare",
			Industry:             "Biotechnology",
			Address:              "265 Watline Avenue, Mississauga, ON, Canada, L4Z 1P3",
			OfficialSite:         "https://www.microbix.com",
			MarketCapitalization: "44250000",
			PERatio:              "28.75",
			DividendYield:        "0",
			EPS:                  "0.013",
			Beta:                 "0.92",
			Week52High:           "0.41",
			Week52Low:            "0.24",
		},
		"0K19.LON": {
			Symbol:               "0K19.LON",
			AssetType:            "Common Stock",
			Name:                 "Microchip Technology Inc.",
			Description:          "Microchip Technology Incorporated develops, manufactures, and sells smart, connected, and secure embedded control solutions in the Americas, Europe, and Asia. The company offers general purpose 8-bit, 16-bit, and 32-bit microcontrollers; 32-bit embedded microprocessors markets; and specialized microcontrollers for automotive, industrial, computing, communications, lighting, power supplies, motor control, and other applications.",
			Exchange:             "London",
			Currency:             "USD",
			Country:              "USA",
			Sector:               "Technology",
			Industry:             "Semiconductors",
			Address:              "2355 West Chandler Boulevard, Chandler, AZ, United States, 85224",
			OfficialSite:         "https://www.microchip.com",
			MarketCapitalization: "45750000000",
			PERatio:              "25.80",
			DividendYield:        "0.0193",
			EPS:                  "3.12",
			Beta:                 "1.56",
			Week52High:           "95.10",
			Week52Low:            "67.85",
		},
		"VENAF": {
			Symbol:               "VENAF",
			AssetType:            "Warrant",
			Name:                 "MicroAlgo Inc - Warrants (30/04/2027)",
			Description:          "MicroAlgo Inc. Warrants give holders the right to purchase common stock of MicroAlgo Inc. at a specified price until the expiration date in 2027. MicroAlgo Inc. develops and provides central processing algorithm solutions to customers in internet advertisement, gaming, and intelligent chip industries in the People's Republic of China.",
			Exchange:             "OTC",
			Currency:             "USD",
			Country:              "China",
			Sector:               "Technology",
			Industry:             "Software—Application",
			Address:              "888 Dongping Street, Suite 808, Hefei, China, 230031",
			OfficialSite:         "https://www.microalgo.com",
			MarketCapitalization: "5230000",
			PERatio:              "0",
			DividendYield:        "0",
			EPS:                  "0",
			Beta:                 "1.65",
			Week52High:           "1.25",
			Week52Low:            "0.32",
		},
	}
}
