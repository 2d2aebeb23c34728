package sample

// lessons returns the per-topic content for every sample topic. Each lesson
// carries at least one handout-class content block and three quiz questions
// so the sample passes the coverage rules.
func lessons() []lesson {
	return []lesson{
		{
			topicID: "phys-t1",
			sections: []section{
				{"Objectives", "Target", "objectives"},
				{"Introduction", "BookOpen", "intro"},
				{"The Three Laws", "Zap", "content"},
				{"Assessment", "HelpCircle", "quiz"},
			},
			objectives: []string{
				"Define inertia and its relationship to mass",
				"Apply F=ma to solve problems",
				"Identify action-reaction pairs",
			},
			terms: []term{
				{"Inertia", "Resistance of any physical object to any change in its velocity"},
				{"Force", "A push or pull upon an object resulting from interaction with another object"},
				{"Net Force", "The vector sum of all forces acting on an object"},
			},
			content: []contentBlock{
				{secIdx: 2, kind: "introduction", title: "The Foundations of Dynamics",
					text: "Isaac Newton's three laws of motion describe the relationship between the motion of an object and the forces acting on it."},
				{secIdx: 3, kind: "concept_helper", title: "Law of Inertia",
					text: "An object at rest stays at rest and an object in motion stays in motion unless acted upon by an unbalanced force."},
				{secIdx: 3, kind: "warning", title: "Inertia is NOT a force",
					text: "Inertia is a property of matter, not a force that pushes you."},
				{secIdx: 3, kind: "real_world", title: "Rocket Propulsion",
					text: "A rocket pushes gas down (action), and the gas pushes the rocket up (reaction)."},
			},
			formulas: []formula{
				{"F = m \\cdot a", "Newton's Second Law", []variable{{"F", "Force", "N"}, {"m", "Mass", "kg"}, {"a", "Acceleration", "m/s²"}}},
				{"W = m \\cdot g", "Weight", []variable{{"W", "Weight", "N"}, {"m", "Mass", "kg"}, {"g", "Gravity", "m/s²"}}},
			},
			questions: []question{
				{"Which property of an object determines its inertia?", "Volume", "Mass", "Weight", "Velocity", "B", "Mass is a direct measure of inertia."},
				{"A 10kg object accelerates at 2 m/s². What is the force?", "5 N", "12 N", "20 N", "0.2 N", "C", "F = m * a = 10 * 2 = 20 N."},
				{"Action and reaction forces are always...", "Unequal", "In the same direction", "Acting on the same object", "Equal and opposite", "D", "Newton's 3rd Law states they are equal in magnitude and opposite in direction."},
			},
		},
		{
			topicID: "phys-t2",
			sections: []section{
				{"Objectives", "Target", "objectives"},
				{"Work", "Hammer", "content"},
				{"Energy & Conservation", "RefreshCw", "content"},
				{"Quiz", "HelpCircle", "quiz"},
			},
			objectives: []string{
				"Define Work in physics",
				"Distinguish between kinetic and potential energy",
				"Apply conservation of energy principle",
			},
			terms: []term{
				{"Work", "Force applied over a distance (Joules)"},
				{"Kinetic Energy", "Energy of motion"},
				{"Potential Energy", "Stored energy due to position or state"},
			},
			content: []contentBlock{
				{secIdx: 2, kind: "introduction", title: "Physics Definition of Work",
					text: "In physics, work is done only when a force moves an object. Pushing a wall and not moving it means zero work is done!"},
				{secIdx: 2, kind: "formula", title: "Work Formula", text: "W = F \\cdot d"},
				{secIdx: 3, kind: "concept_helper", title: "Law of Conservation",
					text: "Energy cannot be created or destroyed, only transformed."},
				{secIdx: 3, kind: "video", title: "Roller Coaster Physics",
					text: "Watch how energy transforms.", videoURL: "https://www.youtube.com/watch?v=Jnj8mc04r9E"},
			},
			formulas: []formula{
				{"W = F \\cdot d", "Work", []variable{{"W", "Work", "J"}, {"F", "Force", "N"}, {"d", "Distance", "m"}}},
				{"KE = \\frac{1}{2}mv^2", "Kinetic Energy", []variable{{"KE", "Energy", "J"}, {"m", "Mass", "kg"}, {"v", "Velocity", "m/s"}}},
			},
			questions: []question{
				{"What is the unit for Work?", "Newton", "Watt", "Joule", "Meter", "C", "Work is measured in Joules (N·m)."},
				{"A ball held 2m high has what type of energy?", "Kinetic", "Gravitational Potential", "Elastic", "Thermal", "B", "It has potential due to gravity."},
				{"Can energy be destroyed?", "Yes, by friction", "Yes, in black holes", "No, only transformed", "No, except nuclear", "C", "Law of Conservation of Energy states it cannot be created or destroyed."},
			},
		},
		{
			topicID: "phys-t3",
			sections: []section{
				{"Objectives", "Target", "objectives"},
				{"Circuits", "Zap", "content"},
				{"Ohm's Law", "Calculator", "content"},
				{"Quiz", "HelpCircle", "quiz"},
			},
			objectives: []string{
				"Understand circuit components",
				"Calculate using Ohm's Law",
				"Differentiate series and parallel circuits",
			},
			terms: []term{
				{"Voltage", "Electrical potential difference (Volts)"},
				{"Current", "Flow of electric charge (Amps)"},
				{"Resistance", "Opposition to current flow (Ohms)"},
			},
			content: []contentBlock{
				{secIdx: 2, kind: "introduction", title: "Electric Circuits",
					text: "A closed loop that allows current to flow. Requires a source (battery), load (bulb), and wires."},
				{secIdx: 2, kind: "concept_helper", title: "Series vs Parallel",
					text: "In Series, if one bulb goes out, they all go out. In Parallel, others stay on."},
				{secIdx: 3, kind: "formula", title: "Ohm's Law", text: "V = I \\cdot R"},
				{secIdx: 3, kind: "warning", title: "Short Circuits",
					text: "Never connect positive directly to negative without a load! It creates dangerous heat."},
			},
			formulas: []formula{
				{"V = I \\cdot R", "Ohm's Law", []variable{{"V", "Voltage", "V"}, {"I", "Current", "A"}, {"R", "Resistance", "Ω"}}},
			},
			questions: []question{
				{"What flows in a circuit?", "Protons", "Neutrons", "Electrons", "Atoms", "C", "Current is the flow of electrons."},
				{"If V=12V and R=4Ω, what is the Current?", "3 A", "48 A", "0.33 A", "16 A", "A", "I = V/R = 12/4 = 3 Amps."},
				{"What unit measures Resistance?", "Volt", "Amp", "Ohm", "Watt", "C", "Ohms (Ω) measure resistance."},
			},
		},
		{
			topicID: "math-t1",
			sections: []section{
				{"Objectives", "Target", "objectives"},
				{"Basics", "BookOpen", "content"},
				{"Simplifying", "Minimize2", "content"},
				{"Quiz", "HelpCircle", "quiz"},
			},
			objectives: []string{
				"Identify variables and coefficients",
				"Simplify like terms",
				"Expand algebraic expressions using distributive property",
			},
			terms: []term{
				{"Variable", "A letter representing an unknown number"},
				{"Coefficient", "Number multiplying a variable"},
				{"Like Terms", "Terms that have identical variable parts"},
			},
			content: []contentBlock{
				{secIdx: 2, kind: "text", title: "What is Algebra?",
					text: "Algebra is generalized arithmetic. We use letters to represent numbers we don't know yet."},
				{secIdx: 3, kind: "concept_helper", title: "Like Terms",
					text: "You can only add terms if they have the same variable part. 2x + 3x = 5x, but 2x + 3y cannot be combined."},
				{secIdx: 3, kind: "warning", title: "Watch the powers", text: "x and x² are NOT like terms!"},
			},
			formulas: []formula{
				{"a(b + c) = ab + ac", "Distributive Property", []variable{{"a", "Factor", ""}, {"b", "Term 1", ""}, {"c", "Term 2", ""}}},
			},
			questions: []question{
				{"Simplify: 3x + 4y - x", "7xy", "2x + 4y", "6xy", "3x + 3y", "B", "Combine 3x and -x to get 2x. 4y stays separate."},
				{"Expand: 2(x + 3)", "2x + 3", "2x + 6", "x + 6", "5x", "B", "Multiply 2 by both terms inside: 2*x + 2*3."},
				{"What is the coefficient in 5y?", "y", "5", "5y", "Unknown", "B", "The number multiplying the variable is the coefficient."},
			},
		},
		{
			topicID: "math-t2",
			sections: []section{
				{"Objectives", "Target", "objectives"},
				{"Types", "Triangle", "content"},
				{"Pythagoras", "Calculator", "content"},
				{"Quiz", "HelpCircle", "quiz"},
			},
			objectives: []string{
				"Classify triangles by sides and angles",
				"Use Pythagorean theorem",
				"Calculate area of triangles",
			},
			terms: []term{
				{"Hypotenuse", "Longest side of a right triangle"},
				{"Equilateral", "Triangle with 3 equal sides"},
				{"Right Angle", "90 degree angle"},
			},
			content: []contentBlock{
				{secIdx: 2, kind: "introduction", title: "Triangle Types",
					text: "Triangles can be classified by sides (equilateral, isosceles, scalene) or angles (acute, obtuse, right)."},
				{secIdx: 2, kind: "concept_helper", title: "Angle Sum",
					text: "The sum of angles in ANY triangle is always 180°."},
				{secIdx: 3, kind: "formula", title: "Pythagorean Theorem", text: "a^2 + b^2 = c^2"},
				{secIdx: 3, kind: "real_world", title: "Construction",
					text: "Builders use the 3-4-5 rule (Pythagoras) to check if corners are perfectly square."},
			},
			formulas: []formula{
				{"a^2 + b^2 = c^2", "Pythagorean Theorem", []variable{{"c", "Hypotenuse", ""}, {"a", "Side A", ""}, {"b", "Side B", ""}}},
				{"A = \\frac{1}{2}b \\cdot h", "Area of Triangle", []variable{{"A", "Area", "units²"}, {"b", "Base", "units"}, {"h", "Height", "units"}}},
			},
			questions: []question{
				{"Which triangle has all equal sides?", "Isosceles", "Scalene", "Equilateral", "Right", "C", "Equi-lateral means equal sides."},
				{"Calculate the hypotenuse if sides are 3 and 4.", "5", "6", "7", "25", "A", "3² + 4² = 9 + 16 = 25. √25 = 5."},
				{"Sum of angles in a triangle?", "90", "180", "360", "100", "B", "Always 180 degrees."},
			},
		},
		{
			topicID: "math-t3",
			sections: []section{
				{"Objectives", "Target", "objectives"},
				{"Chance", "HelpCircle", "content"},
				{"Calculating", "Calculator", "content"},
				{"Quiz", "HelpCircle", "quiz"},
			},
			objectives: []string{
				"Understand probability scale",
				"Calculate simple probabilities",
				"Determine sample spaces",
			},
			terms: []term{
				{"Sample Space", "Set of all possible outcomes"},
				{"Certain", "Probability of 1 (or 100%)"},
				{"Independent Events", "Events where one outcome does not affect the other"},
			},
			content: []contentBlock{
				{secIdx: 2, kind: "text", title: "The Scale",
					text: "Probability ranges from 0 (Impossible) to 1 (Certain). Fractions, decimals, or percentages can be used."},
				{secIdx: 3, kind: "concept_helper", title: "Complementary Events",
					text: "P(Not A) = 1 - P(A). Chance of rain is 20%, chance of NO rain is 80%."},
				{secIdx: 3, kind: "warning", title: "Gambler's Fallacy",
					text: "Past results do not affect independent future results. The coin doesn't \"remember\" it was heads."},
			},
			formulas: []formula{
				{"P(A) = \\frac{n(A)}{n(S)}", "Probability", []variable{{"P", "Probability", ""}, {"n(A)", "Favorable", ""}, {"n(S)", "Total", ""}}},
			},
			questions: []question{
				{"Probability of flipping heads?", "0.25", "0.5", "0.75", "1", "B", "1 favorable (heads) / 2 total (heads, tails) = 0.5"},
				{"If P(Win) = 0.4, what is P(Lose)?", "0.4", "0.6", "0.5", "0.1", "B", "1 - 0.4 = 0.6"},
				{"The set of all possible outcomes is called...", "Event", "Probability", "Sample Space", "Result", "C", "Definition of Sample Space."},
			},
		},
		{
			topicID: "chem-t1",
			sections: []section{
				{"Objectives", "Target", "objectives"},
				{"The Atom", "Atom", "content"},
				{"Subatomic Particles", "Disc", "content"},
				{"Quiz", "HelpCircle", "quiz"},
			},
			objectives: []string{
				"Describe the structure of an atom",
				"Identify protons, neutrons, electrons",
				"Determine atomic mass and atomic number",
			},
			terms: []term{
				{"Nucleus", "Central part of atom containing protons/neutrons"},
				{"Atomic Number", "Number of protons (defines the element)"},
				{"Isotope", "Atoms of the same element with different neutron counts"},
			},
			content: []contentBlock{
				{secIdx: 2, kind: "introduction", title: "Building Blocks of Matter",
					text: "Everything around you is made of atoms: a tiny dense nucleus surrounded by a cloud of electrons."},
				{secIdx: 3, kind: "concept_helper", title: "Charge Balance",
					text: "A neutral atom has equal numbers of protons and electrons."},
				{secIdx: 3, kind: "warning", title: "Mass vs Number",
					text: "Atomic mass counts protons AND neutrons; atomic number counts protons only."},
			},
			questions: []question{
				{"Which particle carries a negative charge?", "Proton", "Neutron", "Electron", "Nucleus", "C", "Electrons are negatively charged."},
				{"What defines which element an atom is?", "Neutrons", "Protons", "Electrons", "Mass", "B", "The atomic number (protons) defines the element."},
				{"Where is most of an atom's mass?", "Electron cloud", "Nucleus", "Shells", "Evenly spread", "B", "Protons and neutrons in the nucleus carry nearly all the mass."},
			},
		},
		{
			topicID: "chem-t2",
			sections: []section{
				{"Objectives", "Target", "objectives"},
				{"Organization", "Grid", "content"},
				{"Trends", "ArrowDown", "content"},
				{"Quiz", "HelpCircle", "quiz"},
			},
			objectives: []string{
				"Explain how the periodic table is organized",
				"Locate groups and periods",
				"Predict properties from position",
			},
			terms: []term{
				{"Group", "A vertical column of the periodic table"},
				{"Period", "A horizontal row of the periodic table"},
				{"Noble Gas", "An unreactive element in group 18"},
			},
			content: []contentBlock{
				{secIdx: 2, kind: "introduction", title: "Mendeleev's Map",
					text: "The periodic table arranges elements by increasing atomic number so that elements with similar properties line up in columns."},
				{secIdx: 2, kind: "concept_helper", title: "Groups Share Behavior",
					text: "Elements in the same group have the same number of outer electrons, so they react in similar ways."},
				{secIdx: 3, kind: "real_world", title: "Neon Signs",
					text: "Noble gases like neon glow when electrified but refuse to react, which makes them safe for lighting."},
			},
			questions: []question{
				{"Elements are ordered by...", "Mass", "Atomic number", "Density", "Discovery date", "B", "Modern tables order elements by proton count."},
				{"A column of the periodic table is called a...", "Period", "Row", "Group", "Block", "C", "Vertical columns are groups."},
				{"Which group is almost completely unreactive?", "Alkali metals", "Halogens", "Noble gases", "Transition metals", "C", "Noble gases have full outer shells."},
			},
		},
		{
			topicID: "chem-t3",
			sections: []section{
				{"Objectives", "Target", "objectives"},
				{"Ionic Bonds", "Link", "content"},
				{"Covalent Bonds", "Share2", "content"},
				{"Quiz", "HelpCircle", "quiz"},
			},
			objectives: []string{
				"Explain why atoms bond",
				"Distinguish ionic and covalent bonding",
				"Predict bond type from the elements involved",
			},
			terms: []term{
				{"Ion", "An atom that has gained or lost electrons"},
				{"Covalent Bond", "A bond formed by sharing electron pairs"},
				{"Ionic Bond", "Attraction between oppositely charged ions"},
			},
			content: []contentBlock{
				{secIdx: 2, kind: "introduction", title: "Why Atoms Bond",
					text: "Atoms bond to reach a stable full outer shell, either by transferring electrons or by sharing them."},
				{secIdx: 2, kind: "concept_helper", title: "Metal + Non-metal",
					text: "Metals hand electrons to non-metals, forming ionic compounds like table salt."},
				{secIdx: 3, kind: "warning", title: "Sharing is not splitting",
					text: "Covalent electrons belong to both atoms at once; neither atom keeps them alone."},
			},
			questions: []question{
				{"Sodium chloride is held together by...", "Covalent bonds", "Ionic bonds", "Metallic bonds", "Gravity", "B", "Na+ and Cl- ions attract each other."},
				{"A covalent bond forms by...", "Transferring electrons", "Sharing electrons", "Losing protons", "Merging nuclei", "B", "Covalent bonds share electron pairs."},
				{"An atom that lost an electron is...", "Negative", "Neutral", "Positive", "Radioactive", "C", "Losing a negative charge leaves a positive ion."},
			},
		},
		{
			topicID: "bio-t1",
			sections: []section{
				{"Objectives", "Target", "objectives"},
				{"Cell Structure", "Microscope", "content"},
				{"Organelles", "Circle", "content"},
				{"Quiz", "HelpCircle", "quiz"},
			},
			objectives: []string{
				"Identify the main parts of a cell",
				"Compare plant and animal cells",
				"Relate organelles to their functions",
			},
			terms: []term{
				{"Organelle", "A specialized structure within a cell"},
				{"Mitochondria", "Organelles that release energy from glucose"},
				{"Cell Membrane", "Barrier controlling what enters and leaves the cell"},
			},
			content: []contentBlock{
				{secIdx: 2, kind: "introduction", title: "The Unit of Life",
					text: "Every living thing is built from cells, the smallest units that can carry out life processes."},
				{secIdx: 3, kind: "concept_helper", title: "Powerhouse",
					text: "Mitochondria release energy through respiration; busy cells like muscle have many of them."},
				{secIdx: 3, kind: "real_world", title: "Plant vs Animal",
					text: "Plant cells add a rigid cell wall and chloroplasts, which is why plants stand up without bones."},
			},
			questions: []question{
				{"Which organelle releases energy?", "Nucleus", "Mitochondria", "Ribosome", "Vacuole", "B", "Mitochondria carry out respiration."},
				{"Which structure do ONLY plant cells have?", "Membrane", "Cytoplasm", "Cell wall", "Nucleus", "C", "Cell walls are unique to plants (and fungi/bacteria)."},
				{"What controls the cell's activities?", "Membrane", "Nucleus", "Cytoplasm", "Chloroplast", "B", "The nucleus holds the DNA instructions."},
			},
		},
		{
			topicID: "bio-t2",
			sections: []section{
				{"Objectives", "Target", "objectives"},
				{"DNA", "Dna", "content"},
				{"Inheritance", "GitBranch", "content"},
				{"Quiz", "HelpCircle", "quiz"},
			},
			objectives: []string{
				"Describe the structure of DNA",
				"Explain how traits are inherited",
				"Distinguish dominant and recessive alleles",
			},
			terms: []term{
				{"Gene", "A section of DNA coding for one characteristic"},
				{"Allele", "One version of a gene"},
				{"Chromosome", "A coiled strand of DNA in the nucleus"},
			},
			content: []contentBlock{
				{secIdx: 2, kind: "introduction", title: "The Code of Life",
					text: "DNA is a double helix whose base sequence spells out instructions for building every protein in your body."},
				{secIdx: 3, kind: "concept_helper", title: "Dominant Wins",
					text: "With one dominant and one recessive allele, the dominant trait shows; recessive traits need two copies."},
				{secIdx: 3, kind: "flowchart", title: "Punnett Square",
					text: "Crossing Bb with Bb gives BB, Bb, Bb, bb: a 3-to-1 ratio of dominant to recessive traits."},
			},
			questions: []question{
				{"DNA has the shape of a...", "Single strand", "Double helix", "Triangle", "Ring", "B", "Two strands twist into a double helix."},
				{"How many allele copies show a recessive trait?", "0", "1", "2", "3", "C", "Recessive traits need both copies."},
				{"Where are chromosomes found?", "Cytoplasm", "Membrane", "Nucleus", "Mitochondria", "C", "Chromosomes live in the nucleus."},
			},
		},
		{
			topicID: "bio-t3",
			sections: []section{
				{"Objectives", "Target", "objectives"},
				{"Food Chains", "Link", "content"},
				{"Cycles", "RefreshCw", "content"},
				{"Quiz", "HelpCircle", "quiz"},
			},
			objectives: []string{
				"Trace energy flow through food chains",
				"Describe producer and consumer roles",
				"Explain how materials cycle through an ecosystem",
			},
			terms: []term{
				{"Producer", "An organism that makes its own food from sunlight"},
				{"Consumer", "An organism that eats other organisms"},
				{"Decomposer", "An organism that breaks down dead material"},
			},
			content: []contentBlock{
				{secIdx: 2, kind: "introduction", title: "Energy in Ecosystems",
					text: "Energy enters ecosystems as sunlight, is captured by producers, and passes along food chains to consumers."},
				{secIdx: 2, kind: "concept_helper", title: "The 10% Rule",
					text: "Only about a tenth of the energy at each level passes to the next; the rest is lost as heat."},
				{secIdx: 3, kind: "real_world", title: "Composting",
					text: "A compost heap is decomposition at work, returning nutrients from food scraps back to the soil."},
			},
			questions: []question{
				{"Which organisms start every food chain?", "Consumers", "Producers", "Decomposers", "Predators", "B", "Producers capture the sun's energy first."},
				{"Roughly how much energy passes between levels?", "100%", "50%", "10%", "1%", "C", "About 10% transfers; the rest is lost."},
				{"Fungi and bacteria that recycle dead matter are...", "Producers", "Herbivores", "Decomposers", "Carnivores", "C", "Decomposers break down dead material."},
			},
		},
	}
}
