package milestone

import "time"

// DefaultCatalog returns the built-in events loaded into an empty catalog at startup.
func DefaultCatalog() []Milestone {
	return []Milestone{
		{Title: "Battle of Hastings", Description: "Norman forces under William defeat King Harold II in England.", ActualDate: Date(1066, time.October, 14)},
		{Title: "Magna Carta Sealed", Description: "King John of England agrees to the charter at Runnymede.", ActualDate: Date(1215, time.June, 15)},
		{Title: "Columbus Reaches the Americas", Description: "The first expedition makes landfall in the Bahamas.", ActualDate: Date(1492, time.October, 12)},
		{Title: "Ninety-five Theses", Description: "Martin Luther circulates his disputation in Wittenberg.", ActualDate: Date(1517, time.October, 31)},
		{Title: "Declaration of Independence Adopted", Description: "The Second Continental Congress adopts the declaration in Philadelphia.", ActualDate: Date(1776, time.July, 4)},
		{Title: "Storming of the Bastille", Description: "Parisians seize the fortress prison, a flashpoint of the French Revolution.", ActualDate: Date(1789, time.July, 14)},
		{Title: "Battle of Waterloo", Description: "Napoleon is defeated by coalition armies in present-day Belgium.", ActualDate: Date(1815, time.June, 18)},
		{Title: "On the Origin of Species Published", Description: "Charles Darwin's book on natural selection goes on sale in London.", ActualDate: Date(1859, time.November, 24)},
		{Title: "Emancipation Proclamation Takes Effect", Description: "Lincoln's executive order declares enslaved people in Confederate states free.", ActualDate: Date(1863, time.January, 1)},
		{Title: "Gettysburg Address", Description: "Abraham Lincoln delivers a short speech at a military cemetery dedication.", ActualDate: Date(1863, time.November, 19)},
		{Title: "Golden Spike Driven", Description: "The first transcontinental railroad in the United States is completed.", ActualDate: Date(1869, time.May, 10)},
		{Title: "Suez Canal Opens", Description: "The waterway linking the Mediterranean and Red Sea opens to shipping.", ActualDate: Date(1869, time.November, 17)},
		{Title: "Telephone Patent Granted", Description: "Alexander Graham Bell receives a patent for the telephone.", ActualDate: Date(1876, time.March, 7)},
		{Title: "Krakatoa Erupts", Description: "A cataclysmic eruption destroys most of the volcanic island.", ActualDate: Date(1883, time.August, 27)},
		{Title: "Eiffel Tower Inaugurated", Description: "The iron tower is inaugurated ahead of the Paris World's Fair.", ActualDate: Date(1889, time.March, 31)},
		{Title: "First Powered Flight", Description: "The Wright brothers fly at Kitty Hawk, North Carolina.", ActualDate: Date(1903, time.December, 17)},
		{Title: "Titanic Sinks", Description: "The liner sinks in the North Atlantic after striking an iceberg.", ActualDate: Date(1912, time.April, 15)},
		{Title: "Archduke Franz Ferdinand Assassinated", Description: "The heir to Austria-Hungary is shot in Sarajevo.", ActualDate: Date(1914, time.June, 28)},
		{Title: "Panama Canal Opens", Description: "The canal opens to traffic between the Atlantic and Pacific.", ActualDate: Date(1914, time.August, 15)},
		{Title: "Armistice of 1918", Description: "Fighting on the Western Front ends at the eleventh hour.", ActualDate: Date(1918, time.November, 11)},
		{Title: "Treaty of Versailles Signed", Description: "The peace treaty formally ending the war with Germany is signed.", ActualDate: Date(1919, time.June, 28)},
		{Title: "Nineteenth Amendment Ratified", Description: "Women's suffrage becomes part of the US Constitution.", ActualDate: Date(1920, time.August, 18)},
		{Title: "Tutankhamun's Tomb Discovered", Description: "Howard Carter's team finds the steps to the tomb in the Valley of the Kings.", ActualDate: Date(1922, time.November, 4)},
		{Title: "Lindbergh Lands in Paris", Description: "The first solo nonstop transatlantic flight ends at Le Bourget.", ActualDate: Date(1927, time.May, 21)},
		{Title: "Penicillin Observed", Description: "Alexander Fleming notices mould killing bacteria in a culture dish.", ActualDate: Date(1928, time.September, 28)},
		{Title: "Black Tuesday", Description: "The Wall Street crash reaches its most severe day of selling.", ActualDate: Date(1929, time.October, 29)},
		{Title: "Hindenburg Disaster", Description: "The German airship catches fire while landing in New Jersey.", ActualDate: Date(1937, time.May, 6)},
		{Title: "Attack on Pearl Harbor", Description: "A surprise strike on the US naval base in Hawaii.", ActualDate: Date(1941, time.December, 7)},
		{Title: "D-Day Landings", Description: "Allied forces land on the beaches of Normandy.", ActualDate: Date(1944, time.June, 6)},
		{Title: "Victory in Europe Day", Description: "The Allies formally accept Germany's unconditional surrender.", ActualDate: Date(1945, time.May, 8)},
		{Title: "United Nations Charter Signed", Description: "Delegates sign the founding charter in San Francisco.", ActualDate: Date(1945, time.June, 26)},
		{Title: "Hiroshima Bombing", Description: "The first atomic bomb used in war is dropped on Hiroshima.", ActualDate: Date(1945, time.August, 6)},
		{Title: "Indian Independence", Description: "India becomes independent from British rule.", ActualDate: Date(1947, time.August, 15)},
		{Title: "Universal Declaration of Human Rights", Description: "The UN General Assembly adopts the declaration in Paris.", ActualDate: Date(1948, time.December, 10)},
		{Title: "DNA Double Helix Published", Description: "Watson and Crick's structure appears in Nature.", ActualDate: Date(1953, time.April, 25)},
		{Title: "First Ascent of Everest", Description: "Edmund Hillary and Tenzing Norgay reach the summit.", ActualDate: Date(1953, time.May, 29)},
		{Title: "Coronation of Elizabeth II", Description: "The coronation takes place at Westminster Abbey.", ActualDate: Date(1953, time.June, 2)},
		{Title: "Rosa Parks Arrested", Description: "Her refusal to give up a bus seat sparks the Montgomery boycott.", ActualDate: Date(1955, time.December, 1)},
		{Title: "Sputnik 1 Launched", Description: "The first artificial satellite reaches orbit.", ActualDate: Date(1957, time.October, 4)},
		{Title: "First Human in Space", Description: "Yuri Gagarin orbits the Earth aboard Vostok 1.", ActualDate: Date(1961, time.April, 12)},
		{Title: "I Have a Dream Speech", Description: "Martin Luther King Jr. speaks at the March on Washington.", ActualDate: Date(1963, time.August, 28)},
		{Title: "Kennedy Assassinated", Description: "President John F. Kennedy is shot in Dallas.", ActualDate: Date(1963, time.November, 22)},
		{Title: "First Super Bowl", Description: "Green Bay and Kansas City meet in the first championship game.", ActualDate: Date(1967, time.January, 15)},
		{Title: "Apollo 11 Moon Landing", Description: "Humans walk on the Moon for the first time.", ActualDate: Date(1969, time.July, 20)},
		{Title: "Apollo 13 Launch", Description: "The mission later aborted its lunar landing after an oxygen tank failure.", ActualDate: Date(1970, time.April, 11)},
		{Title: "Concorde Enters Service", Description: "Supersonic commercial passenger flights begin.", ActualDate: Date(1976, time.January, 21)},
		{Title: "Voyager 1 Launched", Description: "The probe that would become the most distant human-made object lifts off.", ActualDate: Date(1977, time.September, 5)},
		{Title: "Chernobyl Disaster", Description: "Reactor four explodes at the nuclear plant in Soviet Ukraine.", ActualDate: Date(1986, time.April, 26)},
		{Title: "Fall of the Berlin Wall", Description: "Border crossings open and crowds begin tearing down the wall.", ActualDate: Date(1989, time.November, 9)},
		{Title: "Nelson Mandela Released", Description: "Mandela walks free after 27 years in prison.", ActualDate: Date(1990, time.February, 11)},
		{Title: "Hubble Space Telescope Launched", Description: "Space shuttle Discovery carries the telescope into orbit.", ActualDate: Date(1990, time.April, 24)},
		{Title: "First Website Announced", Description: "The World Wide Web project is announced publicly.", ActualDate: Date(1991, time.August, 6)},
		{Title: "Soviet Union Dissolved", Description: "The Supreme Soviet formally dissolves the union.", ActualDate: Date(1991, time.December, 26)},
		{Title: "Channel Tunnel Opens", Description: "The rail tunnel between England and France is officially opened.", ActualDate: Date(1994, time.May, 6)},
		{Title: "Dolly the Sheep Announced", Description: "Scientists reveal the first mammal cloned from an adult cell.", ActualDate: Date(1997, time.February, 22)},
		{Title: "Good Friday Agreement", Description: "A peace agreement is reached for Northern Ireland.", ActualDate: Date(1998, time.April, 10)},
		{Title: "Wikipedia Launched", Description: "The free online encyclopedia goes live.", ActualDate: Date(2001, time.January, 15)},
		{Title: "Euro Cash Introduced", Description: "Euro banknotes and coins enter circulation.", ActualDate: Date(2002, time.January, 1)},
		{Title: "Human Genome Project Completed", Description: "The project announces an essentially complete human genome sequence.", ActualDate: Date(2003, time.April, 14)},
		{Title: "Facebook Launched", Description: "The social network goes live for Harvard students.", ActualDate: Date(2004, time.February, 4)},
		{Title: "First YouTube Video", Description: "A short clip filmed at a zoo is uploaded.", ActualDate: Date(2005, time.April, 23)},
		{Title: "First iPhone Released", Description: "Apple's first smartphone goes on sale in the United States.", ActualDate: Date(2007, time.June, 29)},
		{Title: "Bitcoin Genesis Block", Description: "The first block of the Bitcoin blockchain is mined.", ActualDate: Date(2009, time.January, 3)},
		{Title: "Tohoku Earthquake and Tsunami", Description: "A magnitude 9 earthquake strikes off the coast of Japan.", ActualDate: Date(2011, time.March, 11)},
		{Title: "Higgs Boson Discovery Announced", Description: "CERN announces a new particle consistent with the Higgs boson.", ActualDate: Date(2012, time.July, 4)},
		{Title: "Curiosity Lands on Mars", Description: "NASA's rover touches down in Gale crater.", ActualDate: Date(2012, time.August, 6)},
		{Title: "Philae Lands on a Comet", Description: "The Rosetta mission's lander touches down on comet 67P.", ActualDate: Date(2014, time.November, 12)},
		{Title: "Paris Agreement Adopted", Description: "Nations agree on a framework to limit global warming.", ActualDate: Date(2015, time.December, 12)},
		{Title: "Gravitational Waves Detected", Description: "LIGO announces the first direct observation of gravitational waves.", ActualDate: Date(2016, time.February, 11)},
		{Title: "First Image of a Black Hole", Description: "The Event Horizon Telescope publishes an image of M87's black hole.", ActualDate: Date(2019, time.April, 10)},
		{Title: "COVID-19 Declared a Pandemic", Description: "The World Health Organization characterizes the outbreak as a pandemic.", ActualDate: Date(2020, time.March, 11)},
		{Title: "James Webb Space Telescope Launched", Description: "The infrared observatory lifts off from French Guiana.", ActualDate: Date(2021, time.December, 25)},
		{Title: "ChatGPT Public Release", Description: "A conversational AI assistant opens to the public.", ActualDate: Date(2022, time.November, 30)},
	}
}
